// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import "math"

// Dimension names as they appear in the GHI breakdown maps.
const (
	DimensionAudit      = "audit_readiness"
	DimensionLifecycle  = "lifecycle_risk"
	DimensionSLA        = "sla_gap"
	DimensionCompliance = "compliance"
)

// Fixed composite weights. These are constants of the index, not
// per-call configuration; they sum to 1.0 so the GHI is a convex
// combination of the four dimension scores.
const (
	weightAudit      = 0.4
	weightLifecycle  = 0.3
	weightSLA        = 0.2
	weightCompliance = 0.1
)

// Grade cut-offs over the composite score.
const (
	gradeACutoff = 90.0
	gradeBCutoff = 80.0
	gradeCCutoff = 60.0
	gradeDCutoff = 40.0
)

// ComputeGHI folds four already-computed dimension scores (each in
// [0,100]) into the composite index, rounded to 2 decimals, with its
// letter grade and the weight map for downstream breakdown rendering.
func ComputeGHI(audit, lifecycle, sla, compliance float64) GovernanceHealthIndex {
	ghi := round2(audit*weightAudit + lifecycle*weightLifecycle + sla*weightSLA + compliance*weightCompliance)

	return GovernanceHealthIndex{
		GHI: ghi,
		Dimensions: map[string]float64{
			DimensionAudit:      round2(audit),
			DimensionLifecycle:  round2(lifecycle),
			DimensionSLA:        round2(sla),
			DimensionCompliance: round2(compliance),
		},
		Weights: map[string]float64{
			DimensionAudit:      weightAudit,
			DimensionLifecycle:  weightLifecycle,
			DimensionSLA:        weightSLA,
			DimensionCompliance: weightCompliance,
		},
		Grade: GradeFor(ghi),
	}
}

// GradeFor is the pure step function from composite score to letter grade.
func GradeFor(ghi float64) Grade {
	switch {
	case ghi >= gradeACutoff:
		return GradeA
	case ghi >= gradeBCutoff:
		return GradeB
	case ghi >= gradeCCutoff:
		return GradeC
	case ghi >= gradeDCutoff:
		return GradeD
	default:
		return GradeF
	}
}

// round2 rounds half away from zero to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
