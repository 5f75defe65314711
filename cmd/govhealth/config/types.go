// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package config holds the govhealth CLI configuration, loaded once from
// ~/.govhealth/govhealth.yaml and created with defaults on first run.
package config

// GovhealthConfig is the on-disk CLI configuration.
type GovhealthConfig struct {
	// DataDir is the directory of organization record YAML files.
	DataDir string `yaml:"data_dir"`

	// LogDir enables JSON evidence log files when set.
	LogDir string `yaml:"log_dir"`

	// Output controls default rendering behavior.
	Output OutputConfig `yaml:"output"`
}

// OutputConfig holds rendering defaults, overridable per-invocation by
// flags.
type OutputConfig struct {
	JSON  bool `yaml:"json"`
	Brief bool `yaml:"brief"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() GovhealthConfig {
	return GovhealthConfig{
		DataDir: "~/.govhealth/organizations",
		Output:  OutputConfig{},
	}
}
