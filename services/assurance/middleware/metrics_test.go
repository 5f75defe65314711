// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/veridianlabs/govhealth/services/assurance/observability"
)

func TestRequestMetrics_CountsByRouteAndStatus(t *testing.T) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(RequestMetrics(metrics))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Unregistered paths collapse into a single label so 404 noise cannot
	// grow the series set.
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues("/ping", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(unmatchedEndpoint, "404")))
}

func TestRequestMetrics_NilMetricsPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(RequestMetrics(nil))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
