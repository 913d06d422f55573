// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import "codeberg.org/livedoc/livedoc/server/middleware"

// RegisterMiddleware attaches the middleware chain, outermost first.
func (router *Router) RegisterMiddleware() {
	router.Use(middleware.LogRequest)
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)
	router.Use(middleware.SetResponseHeaders)
}
