// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package handlers implements the assurance HTTP endpoints.
package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veridianlabs/govhealth/services/assurance/datatypes"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
	"github.com/veridianlabs/govhealth/services/governance/reference"
)

// HealthCheck reports liveness and the fingerprints of the embedded
// reference data. Ungated: it exposes rule versions, never record
// contents.
func HealthCheck(records *store.Store) gin.HandlerFunc {
	lifecycleSum := sha256.Sum256(reference.LifecycleTable)
	keywordsSum := sha256.Sum256(reference.FrameworkKeywords)

	return func(c *gin.Context) {
		c.JSON(http.StatusOK, datatypes.HealthResponse{
			Status:           "ok",
			Service:          "assurance",
			ReferenceVersion: governance.ReferenceVersion(),
			LifecycleSHA256:  hex.EncodeToString(lifecycleSum[:]),
			KeywordsSHA256:   hex.EncodeToString(keywordsSum[:]),
			Organizations:    records.Len(),
		})
	}
}
