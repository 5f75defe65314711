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

// ListForecasts runs the audit forecast for each of the organization's
// scheduled audits. Organizations without scheduled audits get an empty
// list, not an error.
func ListForecasts(records governance.Reader, metrics *observability.Metrics) gin.HandlerFunc {
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

		forecasts := make([]governance.Forecast, 0, len(record.ScheduledAudits))
		for _, audit := range record.ScheduledAudits {
			forecast := governance.ForecastAudit(audit, record.Findings)
			if metrics != nil {
				metrics.ObserveForecast(string(forecast.RiskLevel))
			}
			forecasts = append(forecasts, forecast)
		}

		c.JSON(http.StatusOK, datatypes.ForecastListResponse{
			OrganizationID: uri.OrgID,
			Count:          len(forecasts),
			Forecasts:      forecasts,
		})
	}
}
