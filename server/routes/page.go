// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package routes contains the HTTP handlers of the demo server: a single
localized page and the language-switch action.

The dictionary files themselves are an external collaborator; the
registry's path template may point at any static host.
*/
package routes

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	"codeberg.org/livedoc/livedoc/document"
	"codeberg.org/livedoc/livedoc/elements"
	"codeberg.org/livedoc/livedoc/locale"
)

// TextSpec names one translated-text node of the demo page.
type TextSpec struct {
	Key      string
	Fallback string
}

// Handler serves the demo document. The registry (and its dictionary
// cache) is shared across requests; documents, resolvers and elements
// are built per request, one "page load" each.
type Handler struct {
	Registry *locale.Registry
	Texts    []TextSpec
}

// Page renders the localized demo page.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	doc := document.New()
	store := NewCookieStore(w, r)
	resolver := locale.NewResolver(h.Registry, store, doc, preferredLanguages(r))
	broadcaster := locale.NewBroadcaster()

	texts := make([]*elements.TranslatedText, 0, len(h.Texts))

	for _, spec := range h.Texts {
		t := elements.NewTranslatedText(h.Registry, resolver, broadcaster, spec.Key, spec.Fallback)
		t.Attach()
		defer t.Detach()

		texts = append(texts, t)
	}

	selector := elements.NewLanguageSelector(h.Registry, resolver, broadcaster)
	selector.Attach()
	defer selector.Detach()

	// The selector's attach broadcast kicked off asynchronous renders;
	// flush so the response carries the translated content.
	for _, t := range texts {
		t.Flush(r.Context())
	}

	var b strings.Builder

	b.WriteString("<!doctype html><html lang=\"")
	b.WriteString(doc.Attr(document.LangAttr))
	b.WriteString("\" dir=\"")
	b.WriteString(doc.Attr(document.DirAttr))
	b.WriteString("\"><head><title>livedoc demo</title></head><body>")
	b.WriteString(`<form method="post" action="/language">`)
	b.WriteString(selector.HTML())
	b.WriteString(`<button type="submit">Apply</button></form>`)

	for _, t := range texts {
		b.WriteString("<p>")
		b.WriteString(t.HTML())
		b.WriteString("</p>")
	}

	b.WriteString("</body></html>")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(b.String()))
}

// preferredLanguages extracts the environment's preferred-language
// signal from the Accept-Language header, best match first.
func preferredLanguages(r *http.Request) []string {
	header := r.Header.Get("Accept-Language")
	if header == "" {
		return nil
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(tags))
	for _, t := range tags {
		out = append(out, t.String())
	}

	return out
}
