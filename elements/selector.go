// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package elements

import (
	"html"
	"strings"
	"sync"

	"codeberg.org/livedoc/livedoc/locale"
)

// SelectorOption is one entry of a selector's rendered option list.
type SelectorOption struct {
	Locale  string
	Default bool
}

// LanguageSelector renders the set of supported locales, reflects the
// active locale and, on user selection, runs the full switch sequence:
// mark the session as user-switched, persist the choice, apply the
// document markers, broadcast.
//
// The selector owns no dictionaries; its only state is the rendered
// option list and the selected value.
//
// Safe for concurrent use.
type LanguageSelector struct {
	registry    *locale.Registry
	resolver    *locale.Resolver
	broadcaster *locale.Broadcaster

	mu       sync.Mutex
	attached bool
	options  []SelectorOption
	selected string
}

// NewLanguageSelector returns an unattached selector.
func NewLanguageSelector(reg *locale.Registry, res *locale.Resolver, b *locale.Broadcaster) *LanguageSelector {
	return &LanguageSelector{
		registry:    reg,
		resolver:    res,
		broadcaster: b,
	}
}

// Attach builds the option list, reflects the resolved locale as the
// selection and immediately applies document markers and broadcasts it,
// so even the initial render establishes consistent global state
// whether or not the user ever interacts. Attaching twice is a no-op.
func (s *LanguageSelector) Attach() {
	s.mu.Lock()

	if s.attached {
		s.mu.Unlock()

		return
	}

	s.attached = true

	defaultLocale := s.registry.DefaultLocale()
	locales := s.registry.Locales()
	s.options = make([]SelectorOption, 0, len(locales))

	for _, l := range locales {
		s.options = append(s.options, SelectorOption{Locale: l, Default: l == defaultLocale})
	}

	s.selected = s.resolver.CurrentLocale()
	current := s.selected

	s.mu.Unlock()

	s.resolver.ApplyDocumentMarkers(current)
	s.broadcaster.Broadcast(current)
}

// Detach removes the selector from the document and drops its rendered
// option list and selection. Detaching twice is a no-op.
func (s *LanguageSelector) Detach() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.attached = false
	s.options = nil
	s.selected = ""
}

// Select performs a user-driven language switch. Selecting the already
// selected locale, an unsupported locale, or selecting while
// unattached, does nothing.
func (s *LanguageSelector) Select(newLocale string) {
	s.mu.Lock()

	if !s.attached || newLocale == s.selected || !s.registry.IsSupported(newLocale) {
		s.mu.Unlock()

		return
	}

	s.selected = newLocale

	s.mu.Unlock()

	// Order matters: flag, persist and markers first, so listeners
	// invoked by the broadcast observe fully-updated global state.
	s.registry.MarkUserSwitched()
	s.resolver.Persist(newLocale)
	s.resolver.ApplyDocumentMarkers(newLocale)
	s.broadcaster.Broadcast(newLocale)
}

// Selected returns the currently selected locale, or "" when unattached.
func (s *LanguageSelector) Selected() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selected
}

// Options returns a copy of the rendered option list.
func (s *LanguageSelector) Options() []SelectorOption {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]SelectorOption(nil), s.options...)
}

// HTML renders the label and select control.
func (s *LanguageSelector) HTML() string {
	s.mu.Lock()
	options := s.options
	selected := s.selected
	s.mu.Unlock()

	var b strings.Builder

	b.WriteString(`<label for="livedoc-language">Language</label>`)
	b.WriteString(`<select id="livedoc-language" name="locale">`)

	for _, opt := range options {
		b.WriteString(`<option value="`)
		b.WriteString(html.EscapeString(opt.Locale))
		b.WriteString(`"`)

		if opt.Default {
			b.WriteString(` data-default="true"`)
		}

		if opt.Locale == selected {
			b.WriteString(` selected`)
		}

		b.WriteString(`>`)
		b.WriteString(html.EscapeString(opt.Locale))
		b.WriteString(`</option>`)
	}

	b.WriteString(`</select>`)

	return b.String()
}
