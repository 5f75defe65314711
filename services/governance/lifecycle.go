// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

// Lifecycle deduction weights per flagged component.
const (
	deductionEOL        = 25.0
	deductionDeprecated = 15.0
	deductionOutdated   = 5.0
)

// outdatedThreshold is the major-version lag at which a supported
// component still counts as outdated.
const outdatedThreshold = 2

// Risk tier labels for the per-component diagnostics.
const (
	riskTierCritical = "critical"
	riskTierHigh     = "high"
	riskTierMedium   = "medium"
	riskTierLow      = "low"
)

// LifecycleRiskScore computes the lifecycle dimension from a technology
// inventory. Items without a declared lifecycle status are resolved
// against the embedded reference table; unresolvable lookups count as
// unknown and deduct nothing. EOL costs 25 points per component,
// deprecated 15, and a supported component lagging two or more major
// versions 5. An empty inventory scores 100.
func LifecycleRiskScore(items []TechStackItem) LifecycleRisk {
	result := LifecycleRisk{}

	total := 0.0
	for _, item := range items {
		status := item.LifecycleStatus
		if status == "" {
			status = ResolveLifecycle(item.Component, item.Version)
		}

		risk := ComponentRisk{
			Component: item.Component,
			Version:   item.Version,
			Status:    status,
		}

		switch status {
		case LifecycleEOL:
			result.EOLCount++
			risk.RiskTier = riskTierCritical
			total += deductionEOL
		case LifecycleDeprecated:
			result.DeprecatedCount++
			risk.RiskTier = riskTierHigh
			total += deductionDeprecated
		case LifecycleLTS, LifecycleActive, LifecycleUnknown:
			if status == LifecycleUnknown {
				result.UnknownCount++
			}
			if item.MajorVersionsBehind >= outdatedThreshold {
				result.OutdatedCount++
				risk.RiskTier = riskTierMedium
				total += deductionOutdated
			} else {
				result.HealthyCount++
				risk.RiskTier = riskTierLow
			}
		}

		result.Components = append(result.Components, risk)
	}

	result.Score = clampScore(100 - total)
	return result
}
