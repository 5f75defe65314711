// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import (
	"math"
	"strings"
)

// Uptime requirement per application tier, in percent.
var tierRequirements = map[string]float64{
	"Tier 1": 99.99,
	"Tier 2": 99.9,
	"Tier 3": 99.5,
	"Tier 4": 99.0,
}

// SLA gap thresholds and scores. A gap of exactly 0.5 is still at_risk;
// anything above is unrealistic.
const (
	slaAtRiskGap = 0.5

	slaScoreOnTrack     = 100.0
	slaScoreAtRisk      = 60.0
	slaScoreUnrealistic = 20.0
)

// NormalizeTier maps a tier identifier in canonical ("Tier 1"), slug
// ("tier_1"), or compact ("tier1") form to its canonical name. The second
// return is false when the identifier is unrecognized.
func NormalizeTier(raw string) (string, bool) {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer("_", "", " ", "", "-", "").Replace(cleaned)
	if !strings.HasPrefix(cleaned, "tier") {
		return "", false
	}
	canonical := "Tier " + strings.TrimPrefix(cleaned, "tier")
	if _, ok := tierRequirements[canonical]; !ok {
		return "", false
	}
	return canonical, true
}

// SLAGapScore compares a declared uptime target against the requirement of
// the assigned tier. An unrecognized tier or an absent target yields
// status not_configured with score 0 rather than an error: incomplete
// configuration depresses the dimension, it never crashes scoring.
func SLAGapScore(tier string, target *float64) SLAGap {
	canonical, ok := NormalizeTier(tier)
	if !ok || target == nil {
		return SLAGap{Score: 0, Status: SLANotConfigured}
	}

	requirement := tierRequirements[canonical]
	gap := round4(requirement - *target)

	result := SLAGap{
		Tier:        canonical,
		Requirement: requirement,
		Target:      *target,
		Gap:         gap,
	}

	switch {
	case gap <= 0:
		// Covers the over-provisioned case where the target exceeds
		// the tier requirement.
		result.Status = SLAOnTrack
		result.Score = slaScoreOnTrack
	case gap <= slaAtRiskGap:
		result.Status = SLAAtRisk
		result.Score = slaScoreAtRisk
	default:
		result.Status = SLAUnrealistic
		result.Score = slaScoreUnrealistic
	}
	return result
}

// round4 rounds half away from zero to 4 decimal places.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
