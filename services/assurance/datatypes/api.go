// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package datatypes defines the request and response shapes of the
// assurance API.
package datatypes

import "github.com/veridianlabs/govhealth/services/governance"

// ErrorResponse is the uniform error envelope for all assurance endpoints.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// HealthResponse reports service liveness plus the fingerprints of the
// embedded reference data, so operators can confirm which rule version a
// deployment carries.
type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	ReferenceVersion string `json:"reference_version"`
	LifecycleSHA256  string `json:"lifecycle_sha256"`
	KeywordsSHA256   string `json:"keywords_sha256"`
	Organizations    int    `json:"organizations"`
}

// ValidationSummary is one row of the batch validation listing.
type ValidationSummary struct {
	OrganizationID string           `json:"organization_id"`
	GHI            float64          `json:"ghi"`
	Grade          governance.Grade `json:"grade"`
	Passed         bool             `json:"passed"`
	IssueCount     int              `json:"issue_count"`
}

// ValidationListResponse is the batch validation payload.
type ValidationListResponse struct {
	Count       int                 `json:"count"`
	Validations []ValidationSummary `json:"validations"`
}

// ForecastListResponse carries the forecasts for one organization's
// scheduled audits.
type ForecastListResponse struct {
	OrganizationID string                `json:"organization_id"`
	Count          int                   `json:"count"`
	Forecasts      []governance.Forecast `json:"forecasts"`
}

// OrgURI binds and validates the organization id path parameter.
type OrgURI struct {
	OrgID string `uri:"orgId" binding:"required"`
}
