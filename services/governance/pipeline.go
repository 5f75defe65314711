// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package governance

import (
	"fmt"

	"github.com/veridianlabs/govhealth/pkg/logging"
)

// Issue derivation thresholds.
const (
	issueAuditScoreBelow = 50.0
	passGHIFloor         = 60.0
)

// Pipeline runs the four dimension scorers, aggregates the GHI, and
// derives issues and the pass/fail verdict. It holds no per-organization
// state; concurrent Validate calls are safe.
type Pipeline struct {
	log *logging.Logger
}

// NewPipeline creates a Pipeline that writes one evidence line per
// dimension computation through the given logger. A nil logger disables
// evidence logging, which is useful in tests.
func NewPipeline(log *logging.Logger) *Pipeline {
	return &Pipeline{log: log}
}

// Validate scores one organization end to end. The four dimensions are
// independent and computed from the supplied records only, so repeated
// invocations with identical input produce byte-identical results.
func (p *Pipeline) Validate(profile OrganizationProfile, findings []Finding, techStack []TechStackItem) ValidationResult {
	audit := AuditReadinessScore(findings)
	p.evidence("audit readiness computed",
		"org_id", profile.ID,
		"critical", audit.CriticalCount,
		"high", audit.HighCount,
		"medium", audit.MediumCount,
		"low", audit.LowCount,
		"score", audit.Score,
	)

	lifecycle := LifecycleRiskScore(techStack)
	p.evidence("lifecycle risk computed",
		"org_id", profile.ID,
		"eol", lifecycle.EOLCount,
		"deprecated", lifecycle.DeprecatedCount,
		"outdated", lifecycle.OutdatedCount,
		"unknown", lifecycle.UnknownCount,
		"score", lifecycle.Score,
	)

	sla := SLAGapScore(profile.ApplicationTier, profile.SLATarget)
	p.evidence("sla gap computed",
		"org_id", profile.ID,
		"status", string(sla.Status),
		"tier", sla.Tier,
		"gap", sla.Gap,
		"score", sla.Score,
	)

	frameworks := ApplicableFrameworks(profile)
	compliance := ComplianceScore(profile, frameworks)
	p.evidence("compliance applicability computed",
		"org_id", profile.ID,
		"frameworks", len(compliance.Frameworks),
		"score", compliance.Score,
	)

	index := ComputeGHI(audit.Score, lifecycle.Score, sla.Score, compliance.Score)
	issues := deriveIssues(audit, lifecycle, sla, compliance)

	result := ValidationResult{
		OrganizationID: profile.ID,
		Audit:          audit,
		Lifecycle:      lifecycle,
		SLA:            sla,
		Compliance:     compliance,
		Index:          index,
		Passed:         len(issues) == 0 && index.GHI >= passGHIFloor,
		Issues:         issues,
	}

	p.evidence("validation completed",
		"org_id", profile.ID,
		"ghi", index.GHI,
		"grade", string(index.Grade),
		"passed", result.Passed,
		"issues", len(issues),
	)
	return result
}

// ValidateRecord is the record-shaped convenience form used by the API
// and CLI layers.
func (p *Pipeline) ValidateRecord(record OrganizationRecord) ValidationResult {
	return p.Validate(record.Profile, record.Findings, record.TechStack)
}

// deriveIssues converts threshold breaches into human-readable issues.
// The order is fixed (audit, lifecycle, sla, compliance) so repeat runs
// serialize identically.
func deriveIssues(audit AuditReadiness, lifecycle LifecycleRisk, sla SLAGap, compliance ComplianceResult) []string {
	issues := []string{}

	if audit.Score < issueAuditScoreBelow {
		issues = append(issues, fmt.Sprintf(
			"audit readiness is low: %d critical and %d high findings are unresolved",
			audit.CriticalCount, audit.HighCount))
	}
	if lifecycle.EOLCount > 0 {
		issues = append(issues, fmt.Sprintf(
			"%d technology component(s) have reached end-of-life", lifecycle.EOLCount))
	}
	if sla.Status == SLAUnrealistic {
		issues = append(issues, fmt.Sprintf(
			"sla target trails the %s requirement by %.4f%%", sla.Tier, sla.Gap))
	}
	if compliance.Score == complianceScoreBlank && len(compliance.Frameworks) == 0 {
		issues = append(issues,
			"organization profile is unconfigured: no compliance frameworks could be determined")
	}
	return issues
}

// evidence writes one structured evidence line when a logger is attached.
func (p *Pipeline) evidence(msg string, args ...any) {
	if p.log == nil {
		return
	}
	p.log.Info(msg, args...)
}
