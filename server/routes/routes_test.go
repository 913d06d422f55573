// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"codeberg.org/livedoc/livedoc/locale"
)

func newTestHandler(t *testing.T, dicts map[string]string) *Handler {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := dicts[strings.TrimSuffix(path.Base(r.URL.Path), ".json")]
		if !ok {
			http.NotFound(w, r)

			return
		}

		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	reg := locale.NewRegistry(nil)
	require.NoError(t, reg.Configure(locale.Options{
		Locales:       []string{"en", "bn", "ar"},
		DefaultLocale: "en",
		Path:          srv.URL + "/{locale}.json",
	}))

	return &Handler{
		Registry: reg,
		Texts: []TextSpec{
			{Key: "greeting", Fallback: "Hello!"},
			{Key: "farewell", Fallback: "Goodbye!"},
		},
	}
}

func renderPage(t *testing.T, h *Handler, mutate func(r *http.Request)) *goquery.Document {
	t.Helper()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(r)
	}

	w := httptest.NewRecorder()
	h.Page(w, r)

	require.Equal(t, http.StatusOK, w.Code)

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)

	return doc
}

func TestPageRendersDefaultLocale(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, map[string]string{})
	doc := renderPage(t, h, nil)

	html := doc.Find("html")
	require.Equal(t, "en", html.AttrOr("lang", ""))
	require.Equal(t, locale.DirLTR, html.AttrOr("dir", ""))

	// Without dictionaries the inline fallbacks are served.
	require.Equal(t, "Hello!", doc.Find(`span[data-key="greeting"]`).Text())
	require.Equal(t, "Goodbye!", doc.Find(`span[data-key="farewell"]`).Text())

	selected := doc.Find("option[selected]")
	require.Equal(t, 1, selected.Length())
	require.Equal(t, "en", selected.AttrOr("value", ""))
}

func TestPageHonorsLanguageCookie(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, map[string]string{
		"bn": `{"greeting":"হ্যালো!","farewell":"বিদায়"}`,
	})

	doc := renderPage(t, h, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: LangCookie, Value: "bn"})
	})

	require.Equal(t, "bn", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "হ্যালো!", doc.Find(`span[data-key="greeting"]`).Text())
	require.Equal(t, "বিদায়", doc.Find(`span[data-key="farewell"]`).Text())
	require.Equal(t, "bn", doc.Find("option[selected]").AttrOr("value", ""))
}

func TestPageHonorsAcceptLanguage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, map[string]string{
		"ar": `{"greeting":"مرحبا"}`,
	})

	doc := renderPage(t, h, func(r *http.Request) {
		r.Header.Set("Accept-Language", "ar-EG;q=0.9, fr;q=0.8")
	})

	html := doc.Find("html")
	require.Equal(t, "ar", html.AttrOr("lang", ""))
	require.Equal(t, locale.DirRTL, html.AttrOr("dir", ""))
	require.Equal(t, "مرحبا", doc.Find(`span[data-key="greeting"]`).Text())
}

func TestSetLanguagePersistsSupportedChoice(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, map[string]string{})

	form := url.Values{"locale": {"ar"}}
	r := httptest.NewRequest(http.MethodPost, "/language", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.SetLanguage(w, r)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	require.True(t, h.Registry.HasUserSwitched())

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, LangCookie, cookies[0].Name)
	require.Equal(t, "ar", cookies[0].Value)
	require.True(t, cookies[0].HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSetLanguageIgnoresUnsupportedChoice(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, map[string]string{})

	form := url.Values{"locale": {"fr"}}
	r := httptest.NewRequest(http.MethodPost, "/language", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.SetLanguage(w, r)

	// Still redirected, but nothing was persisted or flagged.
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.False(t, h.Registry.HasUserSwitched())
	require.Empty(t, w.Result().Cookies())
}

func TestCookieStoreRoundTrip(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, NewCookieStore(w, r).Save("bn"))

	set := w.Result().Cookies()
	require.Len(t, set, 1)

	// A follow-up request carrying the cookie loads the same value.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(set[0])

	got, ok := NewCookieStore(httptest.NewRecorder(), next).Load()
	require.True(t, ok)
	require.Equal(t, "bn", got)
}

func TestCookieStoreSecureBehindProxy(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-Proto", "https")

	require.NoError(t, NewCookieStore(w, r).Save("bn"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.True(t, cookies[0].Secure)
}
