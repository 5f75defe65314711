// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package regions normalizes geo-region inputs on organization profiles.
//
// Region lists arrive from upstream systems in inconsistent shapes: a YAML
// sequence, a comma-separated string, a JSON-encoded array serialized into
// a string column, or nothing at all. Scoring must never fail on a
// malformed region list, so every parse path here degrades to the empty
// set instead of returning an error.
package regions

import (
	"encoding/json"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// codePattern matches normalized region codes: ISO 3166 alpha-2 codes plus
// aggregates like "EU" or "APAC", capped at 4 letters to stay permissive.
var codePattern = regexp.MustCompile(`^[A-Z]{2,4}$`)

// Set is a normalized collection of region codes. Order is preserved from
// input after deduplication; codes are uppercase.
type Set []string

// Contains reports whether the set includes the given code. The comparison
// normalizes both sides, so Contains("eu") matches "EU".
func (s Set) Contains(code string) bool {
	want := normalize(code)
	for _, c := range s {
		if c == want {
			return true
		}
	}
	return false
}

// Parse converts an arbitrary raw value into a Set. It accepts a string
// ("EU", "US,EU", `["US","EU"]`), a []string, or a []any of strings.
// Anything unparsable yields an empty set, never an error.
func Parse(raw any) Set {
	switch v := raw.(type) {
	case nil:
		return nil
	case []string:
		return fromStrings(v)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return fromStrings(out)
	case string:
		return parseString(v)
	default:
		return nil
	}
}

// UnmarshalYAML accepts either a sequence of codes or a scalar string in
// any of the shapes Parse understands.
func (s *Set) UnmarshalYAML(value *yaml.Node) error {
	var list []string
	if err := value.Decode(&list); err == nil {
		*s = Parse(list)
		return nil
	}
	var scalar string
	if err := value.Decode(&scalar); err == nil {
		*s = Parse(scalar)
		return nil
	}
	// Unparsable shapes degrade to the empty set.
	*s = nil
	return nil
}

// UnmarshalJSON mirrors UnmarshalYAML for JSON payloads.
func (s *Set) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = Parse(list)
		return nil
	}
	var scalar string
	if err := json.Unmarshal(data, &scalar); err == nil {
		*s = Parse(scalar)
		return nil
	}
	*s = nil
	return nil
}

func parseString(v string) Set {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	// A JSON-encoded array serialized into a string column.
	if strings.HasPrefix(trimmed, "[") {
		var list []string
		if err := json.Unmarshal([]byte(trimmed), &list); err != nil {
			return nil
		}
		return fromStrings(list)
	}
	return fromStrings(strings.Split(trimmed, ","))
}

func fromStrings(in []string) Set {
	seen := make(map[string]bool, len(in))
	out := make(Set, 0, len(in))
	for _, raw := range in {
		code := normalize(raw)
		if code == "" || !codePattern.MatchString(code) || seen[code] {
			continue
		}
		seen[code] = true
		out = append(out, code)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
