// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// statusRecorder captures the response status code for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// LogRequest emits one structured log line per handled request.
func LogRequest(w http.ResponseWriter, r *http.Request, next http.Handler) {
	start := time.Now()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	next.ServeHTTP(rec, r)

	log.Info().
		Str("sys", "http").
		Str("method", r.Method).
		Str("url", r.URL.Path).
		Int("status_code", rec.status).
		Dur("duration", time.Since(start)).
		Send()
}
