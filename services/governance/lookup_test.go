// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveLifecycle(t *testing.T) {
	tests := []struct {
		name      string
		component string
		version   string
		want      LifecycleStatus
	}{
		{"exact major match", "node", "18", LifecycleEOL},
		{"patch falls back to major", "node", "18.12.1", LifecycleEOL},
		{"alias resolves to canonical name", "nodejs", "22", LifecycleLTS},
		{"dotted alias", "node.js", "20", LifecycleLTS},
		{"case-insensitive component", "PostgreSQL", "16", LifecycleActive},
		{"postgres alias", "postgres", "13", LifecycleEOL},
		{"major.minor match", "python", "3.12", LifecycleActive},
		{"patch falls back to major.minor", "python", "3.12.4", LifecycleActive},
		{"v prefix accepted", "go", "v1.23", LifecycleDeprecated},
		{"distro-style version", "ubuntu", "20.04", LifecycleEOL},
		{"unknown component", "fortran", "90", LifecycleUnknown},
		{"known component, unlisted version", "node", "12", LifecycleUnknown},
		{"unparsable version", "node", "18.x", LifecycleUnknown},
		{"blank version", "node", "", LifecycleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveLifecycle(tt.component, tt.version))
		})
	}
}

func TestReferenceVersion(t *testing.T) {
	assert.NotEmpty(t, ReferenceVersion())
}

func TestResolveLifecycle_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	results := make([]LifecycleStatus, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ResolveLifecycle("redis", "5")
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		assert.Equal(t, LifecycleEOL, got)
	}
}

func TestCanonVersion(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"18", "v18"},
		{"18.12.1", "v18.12.1"},
		{"v1.25", "v1.25"},
		{"20.04", "v20.4"},
		{"08", "v8"},
		{"1.2.3-rc.1", "v1.2.3-rc.1"},
		{"", ""},
		{"not-a-version", ""},
		{"1.x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, canonVersion(tt.raw))
		})
	}
}

func TestFrameworkKeywords(t *testing.T) {
	t.Run("exact name", func(t *testing.T) {
		assert.Contains(t, frameworkKeywords("HIPAA"), "phi")
	})
	t.Run("versioned name matches by prefix", func(t *testing.T) {
		assert.Contains(t, frameworkKeywords("PCI-DSS v4.0"), "cardholder")
	})
	t.Run("unknown framework falls back to its own name", func(t *testing.T) {
		assert.Equal(t, []string{"tisax"}, frameworkKeywords("TISAX"))
	})
	t.Run("blank framework has no keywords", func(t *testing.T) {
		assert.Empty(t, frameworkKeywords(""))
	})
}
