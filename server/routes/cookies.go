// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/url"
	"time"
)

// LangCookie stores the user's chosen locale across page loads.
const LangCookie = "livedoc-Language"

// SameSite=Lax allows cookies on top-level navigations, preventing the
// saved choice from being dropped when users arrive from external links.
const cookieSameSite = http.SameSiteLaxMode

// Cookies will expire in 30 days from when they are set.
const cookieMaxAge = 30 * 24 * time.Hour

// CookieStore implements locale.ChoiceStore over a request/response
// pair: the persisted user choice lives in the [LangCookie] cookie.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewCookieStore binds a store to one in-flight request.
func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

// Load implements locale.ChoiceStore.
func (s *CookieStore) Load() (string, bool) {
	c, err := s.r.Cookie(LangCookie)
	if err != nil {
		return "", false
	}

	value, err := url.QueryUnescape(c.Value)
	if err != nil || value == "" {
		return "", false
	}

	return value, true
}

// Save implements locale.ChoiceStore.
func (s *CookieStore) Save(locale string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     LangCookie,
		Value:    url.QueryEscape(locale),
		Path:     "/",
		Expires:  time.Now().Add(cookieMaxAge),
		Secure:   isConnectionSecure(s.r),
		HttpOnly: true,
		SameSite: cookieSameSite,
	})

	return nil
}

func isConnectionSecure(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
