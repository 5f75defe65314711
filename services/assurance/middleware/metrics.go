// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/veridianlabs/govhealth/services/assurance/observability"
)

// unmatchedEndpoint labels requests that hit no registered route. Using a
// fixed label keeps arbitrary 404 paths from blowing up metric cardinality.
const unmatchedEndpoint = "unmatched"

// RequestMetrics returns middleware counting completed requests by route
// pattern and status code.
func RequestMetrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metrics == nil {
			c.Next()
			return
		}
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = unmatchedEndpoint
		}
		metrics.ObserveRequest(endpoint, c.Writer.Status())
	}
}
