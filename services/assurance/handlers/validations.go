// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veridianlabs/govhealth/services/assurance/datatypes"
	"github.com/veridianlabs/govhealth/services/assurance/middleware"
	"github.com/veridianlabs/govhealth/services/assurance/observability"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
)

// GetValidation scores one organization and returns the full
// ValidationResult. Unknown ids return 404.
func GetValidation(records governance.Reader, pipeline *governance.Pipeline, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		var uri datatypes.OrgURI
		if err := c.ShouldBindUri(&uri); err != nil {
			c.JSON(http.StatusBadRequest, datatypes.ErrorResponse{
				Error:     "invalid organization id",
				RequestID: middleware.RequestIDFrom(c),
			})
			return
		}

		record, err := records.Organization(uri.OrgID)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotFound) {
				status = http.StatusNotFound
			}
			c.JSON(status, datatypes.ErrorResponse{
				Error:     err.Error(),
				RequestID: middleware.RequestIDFrom(c),
			})
			return
		}

		result := pipeline.ValidateRecord(record)
		if metrics != nil {
			metrics.ObserveValidation(result.Index.GHI, result.Passed)
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListValidations scores every organization and returns one summary row
// per record, ordered by organization id.
func ListValidations(records governance.Reader, pipeline *governance.Pipeline, metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := records.Organizations()
		if err != nil {
			c.JSON(http.StatusInternalServerError, datatypes.ErrorResponse{
				Error:     err.Error(),
				RequestID: middleware.RequestIDFrom(c),
			})
			return
		}

		summaries := make([]datatypes.ValidationSummary, 0, len(all))
		for _, record := range all {
			result := pipeline.ValidateRecord(record)
			if metrics != nil {
				metrics.ObserveValidation(result.Index.GHI, result.Passed)
			}
			summaries = append(summaries, datatypes.ValidationSummary{
				OrganizationID: result.OrganizationID,
				GHI:            result.Index.GHI,
				Grade:          result.Index.Grade,
				Passed:         result.Passed,
				IssueCount:     len(result.Issues),
			})
		}

		c.JSON(http.StatusOK, datatypes.ValidationListResponse{
			Count:       len(summaries),
			Validations: summaries,
		})
	}
}
