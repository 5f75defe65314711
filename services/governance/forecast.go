// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import "strings"

// Forecast risk thresholds.
const (
	forecastCriticalRelated  = 3  // critical+high related findings
	forecastCriticalDeadline = 30 // days until audit
	forecastHighRelatedTotal = 5
	forecastMediumRelated    = 2
)

// Recommendation text per risk level.
var forecastRecommendations = map[RiskLevel]string{
	RiskCritical: "Escalate immediately: remediate critical and high findings before the audit window or request a reschedule.",
	RiskHigh:     "Prioritize remediation of the related findings in the next sprint and assign an audit-readiness owner.",
	RiskMedium:   "Review the related findings and confirm remediation plans are on track before the audit.",
	RiskLow:      "No related findings of concern; proceed with standard audit preparation.",
}

// ForecastAudit cross-references one scheduled audit against the
// organization's findings. Findings count as related when they are still
// open or in progress and their title, description, or domain contains a
// keyword of the audit's framework. The readiness score applies the same
// severity-weighted deductions as the audit readiness dimension,
// restricted to the related set.
func ForecastAudit(audit ScheduledAudit, findings []Finding) Forecast {
	keywords := frameworkKeywords(audit.Framework)

	related := make([]Finding, 0, len(findings))
	for _, f := range findings {
		if !f.Status.Scored() {
			continue
		}
		if findingMatches(f, keywords) {
			related = append(related, f)
		}
	}

	readiness := AuditReadinessScore(related)
	criticalOrHigh := readiness.CriticalCount + readiness.HighCount

	level := riskLevelFor(len(related), criticalOrHigh, audit.DaysUntil)

	return Forecast{
		Framework:       audit.Framework,
		DaysUntilAudit:  audit.DaysUntil,
		RelatedFindings: len(related),
		CriticalOrHigh:  criticalOrHigh,
		ReadinessScore:  readiness.Score,
		RiskLevel:       level,
		Recommendation:  forecastRecommendations[level],
	}
}

func riskLevelFor(related, criticalOrHigh, daysUntil int) RiskLevel {
	switch {
	case criticalOrHigh >= forecastCriticalRelated,
		criticalOrHigh >= 1 && daysUntil < forecastCriticalDeadline:
		return RiskCritical
	case criticalOrHigh >= 1, related >= forecastHighRelatedTotal:
		return RiskHigh
	case related >= forecastMediumRelated:
		return RiskMedium
	default:
		return RiskLow
	}
}

func findingMatches(f Finding, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	haystack := strings.ToLower(f.Title + " " + f.Description + " " + f.Domain)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
