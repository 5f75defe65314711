// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package routes wires the assurance endpoints onto a gin engine.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/veridianlabs/govhealth/services/assurance/handlers"
	"github.com/veridianlabs/govhealth/services/assurance/middleware"
	"github.com/veridianlabs/govhealth/services/assurance/observability"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
)

// StagingEnv is the only environment in which the internal route group
// exists.
const StagingEnv = "staging"

// Internal group rate limit: generous for humans and CI, hostile to
// scraping.
const (
	internalRateRPS   = rate.Limit(10)
	internalRateBurst = 20
)

// SetupRoutes registers all assurance endpoints.
//
// The /internal group is registered only when env is "staging" and an
// admin key is configured. In every other environment the routes do not
// exist, so requests to them draw gin's default 404 and the surface is
// indistinguishable from a service that never had them.
func SetupRoutes(router *gin.Engine, records *store.Store, pipeline *governance.Pipeline,
	metrics *observability.Metrics, env, adminKey string) {

	router.Use(middleware.RequestID(), middleware.RequestMetrics(metrics))

	router.GET("/health", handlers.HealthCheck(records))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if env != StagingEnv || adminKey == "" {
		return
	}

	internal := router.Group("/internal/v1",
		middleware.RateLimit(internalRateRPS, internalRateBurst),
		middleware.AdminKey(adminKey),
	)
	{
		internal.GET("/validations", handlers.ListValidations(records, pipeline, metrics))
		internal.GET("/organizations/:orgId/validation", handlers.GetValidation(records, pipeline, metrics))
		internal.GET("/organizations/:orgId/forecasts", handlers.ListForecasts(records, metrics))
	}
}
