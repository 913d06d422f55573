// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWrap(t *testing.T) {
	t.Parallel()

	var order []string

	m := Middleware(func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		order = append(order, "middleware")
		next.ServeHTTP(w, r)
	})

	handler := Wrap(m, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if len(order) != 2 || order[0] != "middleware" || order[1] != "handler" {
		t.Errorf("execution order = %v, want [middleware handler]", order)
	}
}
