// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
)

// baseHeaders defines the default headers to be set in responses.
//
// NOTE: we intentionally don't set CORP or HSTS headers.
var baseHeaders = http.Header{
	"Referrer-Policy":         {"no-referrer"},
	"X-Frame-Options":         {"DENY"},
	"X-Content-Type-Options":  {"nosniff"},
	"Content-Security-Policy": {"base-uri 'self'; default-src 'self'; style-src 'self' 'unsafe-inline'; frame-ancestors 'none'"},
	"Cache-Control":           {"private, no-cache"},
}

// SetResponseHeaders adds default headers to HTTP responses.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	next.ServeHTTP(w, r)
}
