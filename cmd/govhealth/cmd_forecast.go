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
	"github.com/veridianlabs/govhealth/services/governance"
)

// runForecast is the CLI handler for "govhealth forecast <org-id>".
//
// # Exit Codes
//
//   - 0: No forecast at critical or high risk
//   - 1: At least one forecast at critical or high risk
//   - 2: Error
func runForecast(cmd *cobra.Command, args []string) {
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

	forecasts := make([]governance.Forecast, 0, len(record.ScheduledAudits))
	elevated := false
	for _, audit := range record.ScheduledAudits {
		forecast := governance.ForecastAudit(audit, record.Findings)
		if forecast.RiskLevel == governance.RiskCritical || forecast.RiskLevel == governance.RiskHigh {
			elevated = true
		}
		forecasts = append(forecasts, forecast)
	}

	os.Exit(OutputData(jsonMode, "forecast", forecasts, elevated, func() {
		if len(forecasts) == 0 {
			fmt.Printf("%s has no scheduled audits\n", orgID)
			return
		}
		for _, forecast := range forecasts {
			renderForecast(forecast)
		}
	}))
}
