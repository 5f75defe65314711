// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"

	"github.com/veridianlabs/govhealth/services/governance/reference"
)

// =============================================================================
// Lifecycle Reference Table
// =============================================================================

// lifecycleFile is the YAML shape of reference.LifecycleTable.
type lifecycleFile struct {
	Version      string `yaml:"version"`
	Technologies []struct {
		Name     string   `yaml:"name"`
		Aliases  []string `yaml:"aliases"`
		Releases []struct {
			Version string          `yaml:"version"`
			Status  LifecycleStatus `yaml:"status"`
		} `yaml:"releases"`
	} `yaml:"technologies"`
}

// lifecycleTable is the compiled lookup: canonical technology name to a
// map of canonicalized version keys to statuses. Read-only after load.
type lifecycleTable struct {
	version string
	aliases map[string]string
	// releases[tech][vKey] where vKey is the semver-canonical form of the
	// table entry ("18" -> "v18", "3.8" -> "v3.8").
	releases map[string]map[string]LifecycleStatus
}

var (
	lifecycleGroup singleflight.Group
	lifecyclePtr   atomic.Pointer[lifecycleTable]
)

// lifecycleRef returns the process-wide lifecycle table, loading it on
// first use. Concurrent first callers collapse into one parse via
// singleflight; afterwards reads are lock-free. A parse failure degrades
// to an empty table with a logged warning so scoring keeps running with
// all lookups answering unknown.
func lifecycleRef() *lifecycleTable {
	if t := lifecyclePtr.Load(); t != nil {
		return t
	}
	v, _, _ := lifecycleGroup.Do("lifecycle", func() (any, error) {
		if t := lifecyclePtr.Load(); t != nil {
			return t, nil
		}
		t, err := parseLifecycleTable(reference.LifecycleTable)
		if err != nil {
			slog.Warn("lifecycle reference table failed to load; lookups degrade to unknown",
				"error", err)
			t = &lifecycleTable{
				aliases:  map[string]string{},
				releases: map[string]map[string]LifecycleStatus{},
			}
		}
		lifecyclePtr.Store(t)
		return t, nil
	})
	return v.(*lifecycleTable)
}

func parseLifecycleTable(raw []byte) (*lifecycleTable, error) {
	var file lifecycleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the lifecycle reference yaml: %w", err)
	}

	table := &lifecycleTable{
		version:  file.Version,
		aliases:  make(map[string]string),
		releases: make(map[string]map[string]LifecycleStatus),
	}
	for _, tech := range file.Technologies {
		name := normalizeTech(tech.Name)
		if name == "" {
			continue
		}
		table.aliases[name] = name
		for _, alias := range tech.Aliases {
			if a := normalizeTech(alias); a != "" {
				table.aliases[a] = name
			}
		}
		versions := make(map[string]LifecycleStatus, len(tech.Releases))
		for _, rel := range tech.Releases {
			key := canonVersion(rel.Version)
			if key == "" {
				return nil, fmt.Errorf("unparsable version %q for technology %q", rel.Version, tech.Name)
			}
			versions[key] = rel.Status
		}
		table.releases[name] = versions
	}
	return table, nil
}

// ReferenceVersion returns the version stamp of the embedded lifecycle
// table ("" when the table failed to load).
func ReferenceVersion() string {
	return lifecycleRef().version
}

// ResolveLifecycle resolves a (technology, version) pair against the
// reference table: exact version first, then major.minor, then major
// only. Unresolvable pairs return LifecycleUnknown; this path never
// errors, so incomplete inventories cannot crash a caller.
func ResolveLifecycle(component, version string) LifecycleStatus {
	table := lifecycleRef()

	name, ok := table.aliases[normalizeTech(component)]
	if !ok {
		return LifecycleUnknown
	}
	versions := table.releases[name]

	key := canonVersion(version)
	if key == "" {
		return LifecycleUnknown
	}
	if status, ok := versions[key]; ok {
		return status
	}
	if status, ok := versions[semver.MajorMinor(key)]; ok {
		return status
	}
	if status, ok := versions[semver.Major(key)]; ok {
		return status
	}
	return LifecycleUnknown
}

func normalizeTech(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// canonVersion maps a raw version string to its semver-canonical key with
// the "v" prefix ("18.12.1" -> "v18.12.1"). Numeric segments are stripped
// of leading zeros so distro-style versions like "20.04" stay comparable.
// Returns "" when the input is not version-shaped.
func canonVersion(raw string) string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	if trimmed == "" {
		return ""
	}
	parts := strings.SplitN(trimmed, ".", 3)
	for i, part := range parts {
		if part == "" || strings.IndexFunc(part, notDigit) >= 0 {
			// Non-numeric segment (pre-release, build metadata):
			// defer to strict semver validation.
			key := "v" + trimmed
			if semver.IsValid(key) {
				return key
			}
			return ""
		}
		parts[i] = strings.TrimLeft(part, "0")
		if parts[i] == "" {
			parts[i] = "0"
		}
	}
	key := "v" + strings.Join(parts, ".")
	if !semver.IsValid(key) {
		return ""
	}
	return key
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// =============================================================================
// Framework Keyword Table
// =============================================================================

// keywordFile is the YAML shape of reference.FrameworkKeywords.
type keywordFile struct {
	Frameworks []struct {
		Name     string   `yaml:"name"`
		Keywords []string `yaml:"keywords"`
	} `yaml:"frameworks"`
}

type keywordEntry struct {
	name     string // normalized
	keywords []string
}

var (
	keywordGroup singleflight.Group
	keywordPtr   atomic.Pointer[[]keywordEntry]
)

// keywordRef returns the framework keyword associations, lazily loaded
// with the same degrade-to-empty behavior as the lifecycle table.
func keywordRef() []keywordEntry {
	if e := keywordPtr.Load(); e != nil {
		return *e
	}
	v, _, _ := keywordGroup.Do("keywords", func() (any, error) {
		if e := keywordPtr.Load(); e != nil {
			return *e, nil
		}
		entries, err := parseKeywordTable(reference.FrameworkKeywords)
		if err != nil {
			slog.Warn("framework keyword table failed to load; forecasts match on framework name only",
				"error", err)
			entries = []keywordEntry{}
		}
		keywordPtr.Store(&entries)
		return entries, nil
	})
	return v.([]keywordEntry)
}

func parseKeywordTable(raw []byte) ([]keywordEntry, error) {
	var file keywordFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal the framework keyword yaml: %w", err)
	}
	entries := make([]keywordEntry, 0, len(file.Frameworks))
	for _, fw := range file.Frameworks {
		entry := keywordEntry{name: strings.ToLower(strings.TrimSpace(fw.Name))}
		for _, kw := range fw.Keywords {
			if k := strings.ToLower(strings.TrimSpace(kw)); k != "" {
				entry.keywords = append(entry.keywords, k)
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// frameworkKeywords returns the keyword set for a scheduled audit's
// framework. Names match by normalized prefix in either direction, so
// "PCI-DSS v4.0" resolves to the "PCI-DSS" entry. Unknown frameworks fall
// back to the framework name itself as the only keyword.
func frameworkKeywords(framework string) []string {
	want := strings.ToLower(strings.TrimSpace(framework))
	for _, entry := range keywordRef() {
		if strings.HasPrefix(want, entry.name) || strings.HasPrefix(entry.name, want) {
			return entry.keywords
		}
	}
	if want == "" {
		return nil
	}
	return []string{want}
}
