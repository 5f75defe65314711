// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// The assurance service scores organization records over HTTP.
//
// Configuration is environment-only:
//
//	ASSURANCE_PORT      listen port (default 12310)
//	ASSURANCE_ENV       deployment environment; internal routes exist
//	                    only in "staging"
//	ASSURANCE_ADMIN_KEY credential for the internal route group
//	ASSURANCE_DATA_DIR  directory of organization record YAML files
//	                    (default /app/data/organizations)
//	ASSURANCE_LOG_DIR   optional JSON log file directory
package main

import (
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/veridianlabs/govhealth/pkg/logging"
	"github.com/veridianlabs/govhealth/services/assurance/observability"
	"github.com/veridianlabs/govhealth/services/assurance/routes"
	"github.com/veridianlabs/govhealth/services/assurance/store"
	"github.com/veridianlabs/govhealth/services/governance"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	port := envOr("ASSURANCE_PORT", "12310")
	env := strings.ToLower(envOr("ASSURANCE_ENV", "production"))
	adminKey := os.Getenv("ASSURANCE_ADMIN_KEY")
	dataDir := envOr("ASSURANCE_DATA_DIR", "/app/data/organizations")

	auditLog := logging.New(logging.Config{
		Level:   logging.LevelInfo,
		LogDir:  os.Getenv("ASSURANCE_LOG_DIR"),
		Service: "assurance",
		JSON:    true,
	})
	defer auditLog.Close()

	records, err := store.New(dataDir, auditLog)
	if err != nil {
		log.Fatalf("FATAL: could not load the organization record store: %v", err)
	}
	defer records.Close()
	if err := records.Watch(); err != nil {
		slog.Warn("record directory watch unavailable; records load once at startup", "error", err)
	}
	slog.Info("organization records loaded", "dir", dataDir, "count", records.Len())

	if env == routes.StagingEnv && adminKey == "" {
		slog.Warn("ASSURANCE_ADMIN_KEY is not set; internal routes stay disabled")
	}

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	pipeline := governance.NewPipeline(auditLog)

	router := gin.Default()
	routes.SetupRoutes(router, records, pipeline, metrics, env, adminKey)

	slog.Info("starting the assurance server", "port", port, "env", env)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
