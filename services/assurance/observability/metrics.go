// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package observability provides Prometheus metrics for the assurance
// service. Metrics are exposed on /metrics; all operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace   = "govhealth"
	assuranceSubsystem = "assurance"
)

// Metrics holds the assurance service's Prometheus collectors. Initialize
// once at startup via NewMetrics.
type Metrics struct {
	// ValidationsTotal counts scoring runs by outcome.
	// Labels: outcome (passed, failed)
	ValidationsTotal *prometheus.CounterVec

	// GHIScore observes the composite index of each scoring run.
	GHIScore prometheus.Histogram

	// RequestsTotal counts API requests by endpoint and status code.
	// Labels: endpoint, status
	RequestsTotal *prometheus.CounterVec

	// ForecastsTotal counts forecast computations by risk level.
	// Labels: risk_level (critical, high, medium, low)
	ForecastsTotal *prometheus.CounterVec
}

// NewMetrics registers the assurance collectors with the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use a private
// registry so parallel tests cannot collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: assuranceSubsystem,
			Name:      "validations_total",
			Help:      "Number of organization scoring runs by outcome.",
		}, []string{"outcome"}),
		GHIScore: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: assuranceSubsystem,
			Name:      "ghi_score",
			Help:      "Distribution of composite governance health index scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: assuranceSubsystem,
			Name:      "requests_total",
			Help:      "Number of API requests by endpoint and status.",
		}, []string{"endpoint", "status"}),
		ForecastsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: assuranceSubsystem,
			Name:      "forecasts_total",
			Help:      "Number of audit forecast computations by risk level.",
		}, []string{"risk_level"}),
	}
}

// ObserveValidation records one scoring run.
func (m *Metrics) ObserveValidation(ghi float64, passed bool) {
	outcome := "failed"
	if passed {
		outcome = "passed"
	}
	m.ValidationsTotal.WithLabelValues(outcome).Inc()
	m.GHIScore.Observe(ghi)
}

// ObserveForecast records one forecast computation.
func (m *Metrics) ObserveForecast(riskLevel string) {
	m.ForecastsTotal.WithLabelValues(riskLevel).Inc()
}

// ObserveRequest records one completed API request.
func (m *Metrics) ObserveRequest(endpoint string, status int) {
	m.RequestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}
