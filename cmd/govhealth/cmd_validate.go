// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/veridianlabs/govhealth/cmd/govhealth/config"
	"github.com/veridianlabs/govhealth/pkg/logging"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
)

// runValidate is the CLI handler for "govhealth validate [org-id]".
//
// With no argument every organization in the data directory is scored.
//
// # Exit Codes
//
//   - 0: Every validated organization passed
//   - 1: At least one organization failed validation
//   - 2: Error (no data directory, unknown organization id)
func runValidate(cmd *cobra.Command, args []string) {
	orgID := ""
	if len(args) == 1 {
		orgID = args[0]
	}
	jsonMode := flagJSON || config.Global.Output.JSON
	brief := flagBrief || config.Global.Output.Brief

	records, cleanup, err := openStore()
	if err != nil {
		os.Exit(OutputError(jsonMode, "could not open the organization record store", err))
	}

	results, err := scoreOrganizations(records, orgID)
	cleanup()
	if err != nil {
		os.Exit(OutputError(jsonMode, "validation failed", err))
	}

	failed := 0
	for _, result := range results {
		if !result.Passed {
			failed++
		}
	}

	os.Exit(OutputData(jsonMode, "validate", results, failed > 0, func() {
		for _, result := range results {
			renderValidation(result, brief)
		}
		fmt.Printf("\n%d organization(s) validated, %d failed\n", len(results), failed)
	}))
}

// scoreOrganizations runs the pipeline over one organization, or all of
// them when orgID is empty.
func scoreOrganizations(records governance.Reader, orgID string) ([]governance.ValidationResult, error) {
	pipeline := governance.NewPipeline(evidenceLogger())

	if orgID != "" {
		record, err := records.Organization(orgID)
		if err != nil {
			return nil, err
		}
		return []governance.ValidationResult{pipeline.ValidateRecord(record)}, nil
	}

	all, err := records.Organizations()
	if err != nil {
		return nil, err
	}
	results := make([]governance.ValidationResult, 0, len(all))
	for _, record := range all {
		results = append(results, pipeline.ValidateRecord(record))
	}
	return results, nil
}

// openStore opens the record store at the flag-or-config data directory.
func openStore() (*store.Store, func(), error) {
	dir := flagDataDir
	if dir == "" {
		dir = config.Global.DataDir
	}
	if dir == "" {
		return nil, nil, fmt.Errorf("no data directory configured; set data_dir in the config or pass --data")
	}

	records, err := store.New(config.ExpandPath(dir), evidenceLogger())
	if err != nil {
		return nil, nil, err
	}
	return records, func() { records.Close() }, nil
}

// evidenceLogger builds the quiet evidence logger: file-only when a log
// directory is configured, otherwise disabled so CLI output stays clean.
func evidenceLogger() *logging.Logger {
	if config.Global.LogDir == "" {
		return nil
	}
	return logging.New(logging.Config{
		Level:   logging.LevelInfo,
		LogDir:  config.Global.LogDir,
		Service: "govhealth",
		Quiet:   true,
	})
}
