// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import "codeberg.org/livedoc/livedoc/server/routes"

// DefineRoutes registers all application routes.
func (router *Router) DefineRoutes(h *routes.Handler) {
	router.HandleFunc("GET /{$}", h.Page)
	router.HandleFunc("POST /language", h.SetLanguage)
}
