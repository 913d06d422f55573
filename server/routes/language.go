// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/livedoc/livedoc/locale"
)

// SetLanguage performs a user-driven language switch: it marks the
// session as user-switched and persists the choice in the cookie store.
// Document markers and the broadcast happen on the next page render,
// which is a fresh attachment.
//
// Unsupported locales are ignored; either way the user is sent back to
// the page.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	chosen := r.FormValue("locale")

	if h.Registry.IsSupported(chosen) {
		h.Registry.MarkUserSwitched()

		store := NewCookieStore(w, r)
		resolver := locale.NewResolver(h.Registry, store, nil, nil)
		resolver.Persist(chosen)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
