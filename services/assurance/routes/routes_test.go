// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veridianlabs/govhealth/services/assurance/middleware"
	"github.com/veridianlabs/govhealth/services/assurance/observability"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAdminKey = "test-admin-key"

const healthyOrg = `
organization:
  id: acme
  industry: technology
  application_tier: "Tier 2"
  sla_target: 99.95
findings:
  - id: f-1
    severity: critical
    status: open
  - id: f-2
    severity: high
    status: open
  - id: f-3
    severity: medium
    status: open
scheduled_audits:
  - framework: SOC 2 Type II
    days_until: 90
`

func newTestRouter(t *testing.T, env string) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "acme.yaml"), []byte(healthyOrg), 0644))

	records, err := store.New(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { records.Close() })

	metrics := observability.NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	SetupRoutes(router, records, governance.NewPipeline(nil), metrics, env, testAdminKey)
	return router
}

func get(router *gin.Engine, path, adminKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if adminKey != "" {
		req.Header.Set(middleware.AdminKeyHeader, adminKey)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSetupRoutes_InternalGroupOnlyInStaging(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantStatus int
	}{
		{"staging registers the group", StagingEnv, http.StatusOK},
		{"production draws a plain 404", "production", http.StatusNotFound},
		{"empty env draws a plain 404", "", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t, tt.env)
			w := get(router, "/internal/v1/validations", testAdminKey)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestSetupRoutes_UngatedRoutesAlwaysExist(t *testing.T) {
	router := newTestRouter(t, "production")

	assert.Equal(t, http.StatusOK, get(router, "/health", "").Code)
	assert.Equal(t, http.StatusOK, get(router, "/metrics", "").Code)
}

func TestHealth_ReportsReferenceFingerprints(t *testing.T) {
	router := newTestRouter(t, "production")

	w := get(router, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "assurance", body["service"])
	assert.NotEmpty(t, body["reference_version"])
	assert.Len(t, body["lifecycle_sha256"], 64)
	assert.Len(t, body["keywords_sha256"], 64)
	assert.Equal(t, 1.0, body["organizations"])
}

func TestInternal_AdminKeyEnforcement(t *testing.T) {
	router := newTestRouter(t, StagingEnv)

	t.Run("missing key", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest,
			get(router, "/internal/v1/validations", "").Code)
	})
	t.Run("wrong key", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden,
			get(router, "/internal/v1/validations", "not-the-key").Code)
	})
	t.Run("correct key", func(t *testing.T) {
		assert.Equal(t, http.StatusOK,
			get(router, "/internal/v1/validations", testAdminKey).Code)
	})
}

func TestInternal_GetValidation(t *testing.T) {
	router := newTestRouter(t, StagingEnv)

	w := get(router, "/internal/v1/organizations/acme/validation", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var result governance.ValidationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "acme", result.OrganizationID)
	assert.Equal(t, 74.0, result.Audit.Score)
	assert.Equal(t, 89.6, result.Index.GHI)
	assert.Equal(t, governance.GradeB, result.Index.Grade)
	assert.True(t, result.Passed)
}

func TestInternal_GetValidation_UnknownOrg(t *testing.T) {
	router := newTestRouter(t, StagingEnv)

	w := get(router, "/internal/v1/organizations/ghost/validation", testAdminKey)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInternal_ListValidations(t *testing.T) {
	router := newTestRouter(t, StagingEnv)

	w := get(router, "/internal/v1/validations", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Count       int `json:"count"`
		Validations []struct {
			OrganizationID string  `json:"organization_id"`
			GHI            float64 `json:"ghi"`
			Passed         bool    `json:"passed"`
			IssueCount     int     `json:"issue_count"`
		} `json:"validations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "acme", body.Validations[0].OrganizationID)
	assert.Equal(t, 89.6, body.Validations[0].GHI)
	assert.True(t, body.Validations[0].Passed)
	assert.Equal(t, 0, body.Validations[0].IssueCount)
}

func TestInternal_ListForecasts(t *testing.T) {
	router := newTestRouter(t, StagingEnv)

	w := get(router, "/internal/v1/organizations/acme/forecasts", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		OrganizationID string                `json:"organization_id"`
		Count          int                   `json:"count"`
		Forecasts      []governance.Forecast `json:"forecasts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "acme", body.OrganizationID)
	require.Equal(t, 1, body.Count)
	assert.Equal(t, "SOC 2 Type II", body.Forecasts[0].Framework)
	assert.Equal(t, 90, body.Forecasts[0].DaysUntilAudit)
}
