// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package governance implements the Governance Health Index (GHI) scoring
// core: four independent dimension scorers, the composite aggregator, the
// validation pipeline, and the audit forecast.
//
// Every function in this package is pure with respect to its inputs. The
// callers assemble the organization profile, findings, and tech stack
// records (from the API store, the CLI data directory, or elsewhere) and
// the scorers return value objects without touching storage or the clock.
// The one piece of process-wide state is the embedded lifecycle reference
// table, loaded lazily behind a single-flight accessor (see lookup.go).
package governance

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/veridianlabs/govhealth/pkg/regions"
)

// =============================================================================
// Enumerated Fields
// =============================================================================

// Severity classifies the impact of an unresolved audit finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the four known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	default:
		return false
	}
}

func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	incoming := Severity(raw)
	if !incoming.Valid() {
		return fmt.Errorf("invalid value for Severity: %q", raw)
	}
	*s = incoming
	return nil
}

// FindingStatus tracks the remediation state of a finding. Only open and
// in_progress findings participate in scoring.
type FindingStatus string

const (
	StatusOpen       FindingStatus = "open"
	StatusInProgress FindingStatus = "in_progress"
	StatusResolved   FindingStatus = "resolved"
	StatusAccepted   FindingStatus = "accepted"
)

// Valid reports whether fs is a known finding status.
func (fs FindingStatus) Valid() bool {
	switch fs {
	case StatusOpen, StatusInProgress, StatusResolved, StatusAccepted:
		return true
	default:
		return false
	}
}

// Scored reports whether findings in this status count toward the audit
// readiness score.
func (fs FindingStatus) Scored() bool {
	return fs == StatusOpen || fs == StatusInProgress
}

func (fs *FindingStatus) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	incoming := FindingStatus(raw)
	if !incoming.Valid() {
		return fmt.Errorf("invalid value for FindingStatus: %q", raw)
	}
	*fs = incoming
	return nil
}

// LifecycleStatus is the vendor support stage of a tech stack component.
//
// LifecycleUnknown never appears on input records; it is the result of a
// failed reference-table resolution and contributes no deduction.
type LifecycleStatus string

const (
	LifecycleLTS        LifecycleStatus = "lts"
	LifecycleActive     LifecycleStatus = "active"
	LifecycleDeprecated LifecycleStatus = "deprecated"
	LifecycleEOL        LifecycleStatus = "eol"
	LifecycleUnknown    LifecycleStatus = "unknown"
)

// Valid reports whether ls is a status accepted on input records. The empty
// string is allowed and means "resolve from the reference table".
func (ls LifecycleStatus) Valid() bool {
	switch ls {
	case LifecycleLTS, LifecycleActive, LifecycleDeprecated, LifecycleEOL, "":
		return true
	default:
		return false
	}
}

func (ls *LifecycleStatus) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	incoming := LifecycleStatus(raw)
	if !incoming.Valid() {
		return fmt.Errorf("invalid value for LifecycleStatus: %q", raw)
	}
	*ls = incoming
	return nil
}

// Grade is the letter grade derived from the composite GHI score.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// =============================================================================
// Input Records
// =============================================================================

// OrganizationProfile is the declared posture of one organization. It is an
// immutable input: scorers never write to it.
type OrganizationProfile struct {
	ID         string      `json:"id" yaml:"id" validate:"required"`
	Industry   string      `json:"industry,omitempty" yaml:"industry"`
	GeoRegions regions.Set `json:"geo_regions,omitempty" yaml:"geo_regions"`

	ProcessesPII            bool `json:"processes_pii" yaml:"processes_pii"`
	ProcessesPHI            bool `json:"processes_phi" yaml:"processes_phi"`
	ProcessesCardholderData bool `json:"processes_cardholder_data" yaml:"processes_cardholder_data"`
	HandlesDoDData          bool `json:"handles_dod_data" yaml:"handles_dod_data"`
	UsesAIInProduction      bool `json:"uses_ai_in_production" yaml:"uses_ai_in_production"`
	GovernmentContractor    bool `json:"government_contractor" yaml:"government_contractor"`
	FinancialServices       bool `json:"financial_services" yaml:"financial_services"`

	// ApplicationTier accepts either the canonical ("Tier 1") or slug
	// ("tier_1") form; the SLA analyzer normalizes before lookup.
	ApplicationTier string `json:"application_tier,omitempty" yaml:"application_tier"`

	// SLATarget is the declared uptime percentage, e.g. 99.95. Nil means
	// the organization has not configured one.
	SLATarget *float64 `json:"sla_target,omitempty" yaml:"sla_target"`
}

// Finding is one audit finding, open or historical.
type Finding struct {
	ID          string        `json:"id" yaml:"id" validate:"required"`
	Severity    Severity      `json:"severity" yaml:"severity" validate:"required"`
	Status      FindingStatus `json:"status" yaml:"status" validate:"required"`
	Title       string        `json:"title,omitempty" yaml:"title"`
	Description string        `json:"description,omitempty" yaml:"description"`
	Domain      string        `json:"domain,omitempty" yaml:"domain"`
}

// TechStackItem is one component of an organization's technology inventory.
type TechStackItem struct {
	Component string `json:"component" yaml:"component" validate:"required"`
	Version   string `json:"version,omitempty" yaml:"version"`

	// LifecycleStatus may be empty, in which case the lifecycle scorer
	// resolves it from the embedded reference table.
	LifecycleStatus LifecycleStatus `json:"lifecycle_status,omitempty" yaml:"lifecycle_status"`

	MajorVersionsBehind int `json:"major_versions_behind" yaml:"major_versions_behind" validate:"min=0"`
}

// ScheduledAudit is an upcoming external audit against one framework.
//
// DaysUntil is supplied by the caller so the forecast itself stays free of
// clock reads and remains reproducible.
type ScheduledAudit struct {
	ID        string `json:"id,omitempty" yaml:"id"`
	Framework string `json:"framework" yaml:"framework" validate:"required"`
	DaysUntil int    `json:"days_until" yaml:"days_until"`
}

// OrganizationRecord bundles everything the pipeline needs for one
// organization. Upstream accessors return it fully materialized.
type OrganizationRecord struct {
	Profile         OrganizationProfile `json:"organization" yaml:"organization"`
	Findings        []Finding           `json:"findings,omitempty" yaml:"findings"`
	TechStack       []TechStackItem     `json:"tech_stack,omitempty" yaml:"tech_stack"`
	ScheduledAudits []ScheduledAudit    `json:"scheduled_audits,omitempty" yaml:"scheduled_audits"`
}

// Reader is the upstream collaborator interface: a read accessor over
// organization records. The core has no write path back to storage.
type Reader interface {
	// Organization returns the record for one organization id.
	Organization(id string) (OrganizationRecord, error)

	// Organizations returns every known record, ordered by id.
	Organizations() ([]OrganizationRecord, error)
}

// =============================================================================
// Result Value Objects
// =============================================================================

// FrameworkApplicability is one compliance framework triggered by a
// profile. Produced by the applicability engine, never persisted.
type FrameworkApplicability struct {
	Framework string `json:"framework"`
	Reason    string `json:"reason"`
	Mandatory bool   `json:"mandatory"`
	Reference string `json:"reference,omitempty"`
}

// AuditReadiness is the audit dimension result: the severity-weighted
// deduction score plus per-severity diagnostics.
type AuditReadiness struct {
	Score         float64              `json:"score"`
	CriticalCount int                  `json:"critical_count"`
	HighCount     int                  `json:"high_count"`
	MediumCount   int                  `json:"medium_count"`
	LowCount      int                  `json:"low_count"`
	Deductions    map[Severity]float64 `json:"deductions"`
}

// SLAStatus describes where the declared target sits against the tier
// requirement.
type SLAStatus string

const (
	SLAOnTrack       SLAStatus = "on_track"
	SLAAtRisk        SLAStatus = "at_risk"
	SLAUnrealistic   SLAStatus = "unrealistic"
	SLANotConfigured SLAStatus = "not_configured"
)

// SLAGap is the SLA dimension result.
type SLAGap struct {
	Score       float64   `json:"score"`
	Status      SLAStatus `json:"status"`
	Tier        string    `json:"tier,omitempty"`
	Requirement float64   `json:"requirement,omitempty"`
	Target      float64   `json:"target,omitempty"`
	// Gap is requirement minus target, rounded to 4 decimals. Negative
	// when the target exceeds the requirement.
	Gap float64 `json:"gap"`
}

// ComponentRisk is the per-item lifecycle diagnostic.
type ComponentRisk struct {
	Component string          `json:"component"`
	Version   string          `json:"version,omitempty"`
	Status    LifecycleStatus `json:"status"`
	RiskTier  string          `json:"risk_tier"`
}

// LifecycleRisk is the lifecycle dimension result.
type LifecycleRisk struct {
	Score           float64         `json:"score"`
	EOLCount        int             `json:"eol_count"`
	DeprecatedCount int             `json:"deprecated_count"`
	OutdatedCount   int             `json:"outdated_count"`
	HealthyCount    int             `json:"healthy_count"`
	UnknownCount    int             `json:"unknown_count"`
	Components      []ComponentRisk `json:"components,omitempty"`
}

// ComplianceResult is the compliance dimension result.
type ComplianceResult struct {
	Score      float64                  `json:"score"`
	Frameworks []FrameworkApplicability `json:"frameworks"`
}

// GovernanceHealthIndex is the weighted composite of the four dimension
// scores with its letter grade. Weights are fixed constants and always
// returned so consumers can render a breakdown without recomputation.
type GovernanceHealthIndex struct {
	GHI        float64            `json:"ghi"`
	Dimensions map[string]float64 `json:"dimensions"`
	Weights    map[string]float64 `json:"weights"`
	Grade      Grade              `json:"grade"`
}

// ValidationResult is the full output of one pipeline run. It is created
// fresh on every invocation and never cached by the core.
type ValidationResult struct {
	OrganizationID string                `json:"organization_id"`
	Audit          AuditReadiness        `json:"audit_readiness"`
	Lifecycle      LifecycleRisk         `json:"lifecycle_risk"`
	SLA            SLAGap                `json:"sla_gap"`
	Compliance     ComplianceResult      `json:"compliance"`
	Index          GovernanceHealthIndex `json:"index"`
	Passed         bool                  `json:"passed"`
	Issues         []string              `json:"issues"`
}

// RiskLevel ranks the exposure of an upcoming audit.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskHigh     RiskLevel = "high"
	RiskMedium   RiskLevel = "medium"
	RiskLow      RiskLevel = "low"
)

// Forecast is the outcome of cross-referencing one scheduled audit against
// the organization's open findings.
type Forecast struct {
	Framework       string    `json:"framework"`
	DaysUntilAudit  int       `json:"days_until_audit"`
	RelatedFindings int       `json:"related_findings"`
	CriticalOrHigh  int       `json:"critical_or_high"`
	ReadinessScore  float64   `json:"readiness_score"`
	RiskLevel       RiskLevel `json:"risk_level"`
	Recommendation  string    `json:"recommendation"`
}
