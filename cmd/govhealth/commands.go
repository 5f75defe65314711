// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Flags ---
var (
	flagJSON    bool
	flagBrief   bool
	flagDataDir string

	rootCmd = &cobra.Command{
		Use:   "govhealth",
		Short: "A cli to score organizational governance health",
		Long: `Govhealth computes the Governance Health Index for organization
records: audit readiness, technology lifecycle risk, SLA gap, and
compliance framework applicability, aggregated into a single score.`,
	}

	validateCmd = &cobra.Command{
		Use:   "validate [org-id]",
		Short: "Score organization records and report pass/fail verdicts",
		Args:  cobra.MaximumNArgs(1),
		Run:   runValidate, // Defined in cmd_validate.go
	}

	frameworksCmd = &cobra.Command{
		Use:   "frameworks <org-id>",
		Short: "List the compliance frameworks applicable to an organization",
		Args:  cobra.ExactArgs(1),
		Run:   runFrameworks, // Defined in cmd_frameworks.go
	}

	forecastCmd = &cobra.Command{
		Use:   "forecast <org-id>",
		Short: "Forecast readiness for an organization's scheduled audits",
		Args:  cobra.ExactArgs(1),
		Run:   runForecast, // Defined in cmd_forecast.go
	}

	referenceCmd = &cobra.Command{
		Use:   "reference",
		Short: "Inspect the embedded reference data",
	}
	referenceVerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Print size and SHA-256 fingerprints of the embedded reference tables",
		Run:   runReferenceVerify, // Defined in cmd_reference.go
	}
	referenceDumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Print the embedded reference tables",
		Run:   runReferenceDump, // Defined in cmd_reference.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data", "", "Organization record directory (overrides config)")
	validateCmd.Flags().BoolVar(&flagBrief, "brief", false, "Suppress the per-dimension breakdown")

	referenceCmd.AddCommand(referenceVerifyCmd, referenceDumpCmd)
	rootCmd.AddCommand(validateCmd, frameworksCmd, forecastCmd, referenceCmd)
}
