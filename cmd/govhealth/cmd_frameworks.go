// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/veridianlabs/govhealth/cmd/govhealth/config"
	"github.com/veridianlabs/govhealth/services/governance"
)

// runFrameworks is the CLI handler for "govhealth frameworks <org-id>".
// It runs only the applicability engine, so operators can answer "which
// frameworks bind this organization" without a full scoring run.
func runFrameworks(cmd *cobra.Command, args []string) {
	jsonMode := flagJSON || config.Global.Output.JSON
	orgID := args[0]

	records, cleanup, err := openStore()
	if err != nil {
		os.Exit(OutputError(jsonMode, "could not open the organization record store", err))
	}

	record, err := records.Organization(orgID)
	cleanup()
	if err != nil {
		os.Exit(OutputError(jsonMode, "lookup failed", err))
	}

	frameworks := governance.ApplicableFrameworks(record.Profile)

	os.Exit(OutputData(jsonMode, "frameworks", frameworks, false, func() {
		renderFrameworks(orgID, frameworks)
	}))
}
