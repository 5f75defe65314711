// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Exit codes for CLI commands.
const (
	CLIExitSuccess  = 0 // Every validated organization passed
	CLIExitFindings = 1 // At least one organization failed validation
	CLIExitError    = 2 // Operation failed
)

// CommandResult wraps command output with metadata for JSON mode.
type CommandResult struct {
	APIVersion string    `json:"api_version"`
	Command    string    `json:"command"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success"`
	Data       any       `json:"data,omitempty"`
	Error      string    `json:"error,omitempty"`
}

// OutputJSON writes structured data as indented JSON to stdout.
func OutputJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// OutputError writes an error in the appropriate format and returns
// CLIExitError for convenience.
func OutputError(jsonMode bool, msg string, err error) int {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Timestamp:  time.Now(),
			Success:    false,
			Error:      fmt.Sprintf("%s: %v", msg, err),
		}
		_ = OutputJSON(result)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	}
	return CLIExitError
}

// OutputData writes the command payload, wrapped in a CommandResult in
// JSON mode, and returns the exit code.
func OutputData(jsonMode bool, command string, data any, hasFindings bool, render func()) int {
	if jsonMode {
		result := CommandResult{
			APIVersion: "1.0",
			Command:    command,
			Timestamp:  time.Now(),
			Success:    !hasFindings,
			Data:       data,
		}
		if err := OutputJSON(result); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
			return CLIExitError
		}
	} else if render != nil {
		render()
	}
	if hasFindings {
		return CLIExitFindings
	}
	return CLIExitSuccess
}
