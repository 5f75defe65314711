// Copyright (C) 2026 Veridian Labs (engineering@veridianlabs.io)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package middleware provides HTTP middleware for the assurance service:
// admin-key authentication on the internal route group, per-request ids,
// and rate limiting.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veridianlabs/govhealth/services/assurance/datatypes"
)

// AdminKeyHeader is the header carrying the internal admin credential.
const AdminKeyHeader = "X-Assurance-Key"

// AdminKey returns middleware enforcing the internal admin credential. A
// missing header is a request validation failure (400); a present but
// wrong value is a forbidden (403). The comparison is constant-time.
func AdminKey(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(AdminKeyHeader)
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, datatypes.ErrorResponse{
				Error:     "missing " + AdminKeyHeader + " header",
				RequestID: RequestIDFrom(c),
			})
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, datatypes.ErrorResponse{
				Error:     "invalid admin credential",
				RequestID: RequestIDFrom(c),
			})
			return
		}
		c.Next()
	}
}
