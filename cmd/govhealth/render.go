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

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/veridianlabs/govhealth/services/governance"
)

// Styles for the human-readable renderer. Color is dropped automatically
// when stdout is not a terminal, so piped output stays clean.
var (
	stylePass  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleFail  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleTitle = lipgloss.NewStyle().Bold(true)
)

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// renderValidation prints one organization's result. Brief mode drops the
// per-dimension breakdown.
func renderValidation(result governance.ValidationResult, brief bool) {
	verdict := stylePass.Render("PASSED")
	if !result.Passed {
		verdict = styleFail.Render("FAILED")
	}
	fmt.Printf("%s  GHI %.2f  Grade %s  %s\n",
		styleTitle.Render(result.OrganizationID),
		result.Index.GHI, result.Index.Grade, verdict)

	if !brief {
		fmt.Printf("  audit readiness  %6.2f\n", result.Audit.Score)
		fmt.Printf("  lifecycle risk   %6.2f\n", result.Lifecycle.Score)
		fmt.Printf("  sla gap          %6.2f  (%s)\n", result.SLA.Score, result.SLA.Status)
		fmt.Printf("  compliance       %6.2f  (%d frameworks)\n",
			result.Compliance.Score, len(result.Compliance.Frameworks))
	}

	for _, issue := range result.Issues {
		fmt.Printf("  %s %s\n", styleWarn.Render("issue:"), issue)
	}
}

// renderFrameworks prints the applicable-framework list.
func renderFrameworks(orgID string, frameworks []governance.FrameworkApplicability) {
	fmt.Printf("%s  %d applicable framework(s)\n", styleTitle.Render(orgID), len(frameworks))
	for _, fw := range frameworks {
		fmt.Printf("  %-28s %s\n", fw.Framework, styleDim.Render(fw.Reason))
	}
}

// renderForecast prints one audit forecast.
func renderForecast(forecast governance.Forecast) {
	level := string(forecast.RiskLevel)
	switch forecast.RiskLevel {
	case governance.RiskCritical, governance.RiskHigh:
		level = styleFail.Render(level)
	case governance.RiskMedium:
		level = styleWarn.Render(level)
	default:
		level = stylePass.Render(level)
	}
	fmt.Printf("%s  in %d day(s)  risk %s\n",
		styleTitle.Render(forecast.Framework), forecast.DaysUntilAudit, level)
	fmt.Printf("  related findings: %d (%d critical/high), readiness %.2f\n",
		forecast.RelatedFindings, forecast.CriticalOrHigh, forecast.ReadinessScore)
	fmt.Printf("  %s\n", styleDim.Render(forecast.Recommendation))
}
