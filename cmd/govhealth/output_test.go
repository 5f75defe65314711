// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutputData_ExitCodes(t *testing.T) {
	rendered := false
	code := OutputData(false, "validate", nil, false, func() { rendered = true })
	assert.Equal(t, CLIExitSuccess, code)
	assert.True(t, rendered)

	code = OutputData(false, "validate", nil, true, func() {})
	assert.Equal(t, CLIExitFindings, code)
}

func TestOutputData_JSONModeSkipsRenderer(t *testing.T) {
	rendered := false
	code := OutputData(true, "validate", map[string]int{"n": 1}, false, func() { rendered = true })
	assert.Equal(t, CLIExitSuccess, code)
	assert.False(t, rendered)
}

func TestOutputError_ReturnsErrorCode(t *testing.T) {
	assert.Equal(t, CLIExitError, OutputError(false, "boom", errors.New("nope")))
	assert.Equal(t, CLIExitError, OutputError(true, "boom", errors.New("nope")))
}
