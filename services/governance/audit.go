// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

// Severity deduction weights, applied per finding with no per-category cap.
const (
	deductionCritical = 15.0
	deductionHigh     = 8.0
	deductionMedium   = 3.0
	deductionLow      = 0.0
)

// severityDeduction returns the score deduction for one finding of the
// given severity. Exhaustive over the Severity enum; unknown values (which
// cannot survive input validation) deduct nothing.
func severityDeduction(s Severity) float64 {
	switch s {
	case SeverityCritical:
		return deductionCritical
	case SeverityHigh:
		return deductionHigh
	case SeverityMedium:
		return deductionMedium
	case SeverityLow:
		return deductionLow
	default:
		return 0
	}
}

// AuditReadinessScore computes the audit readiness dimension from a finding
// set. Resolved and accepted findings are excluded before any counting;
// the score is 100 minus the summed severity deductions, clamped at 0.
// An empty finding set scores 100. Ordering of the input is irrelevant.
func AuditReadinessScore(findings []Finding) AuditReadiness {
	result := AuditReadiness{
		Deductions: map[Severity]float64{
			SeverityCritical: 0,
			SeverityHigh:     0,
			SeverityMedium:   0,
			SeverityLow:      0,
		},
	}

	total := 0.0
	for _, f := range findings {
		if !f.Status.Scored() {
			continue
		}
		switch f.Severity {
		case SeverityCritical:
			result.CriticalCount++
		case SeverityHigh:
			result.HighCount++
		case SeverityMedium:
			result.MediumCount++
		case SeverityLow:
			result.LowCount++
		}
		d := severityDeduction(f.Severity)
		result.Deductions[f.Severity] += d
		total += d
	}

	result.Score = clampScore(100 - total)
	return result
}

// clampScore bounds a dimension score to the [0,100] invariant.
func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
