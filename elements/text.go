// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package elements

import (
	"context"
	"fmt"
	"html"
	"sync"

	"codeberg.org/livedoc/livedoc/locale"
)

// State is the lifecycle state of a [TranslatedText].
type State int

const (
	// StateUnattached means the element is not part of a document.
	StateUnattached State = iota

	// StateAttachedPending means a dictionary resolve is outstanding.
	StateAttachedPending

	// StateAttachedRendered means the latest resolve completed, whether
	// or not a translation was found.
	StateAttachedRendered
)

// TranslatedText is a live text node. While attached it holds exactly
// one subscription to the broadcaster and re-renders its content from
// the active locale's dictionary whenever the language changes or its
// key changes.
//
// Lookup misses leave the existing content (typically the inline
// fallback string) untouched.
//
// Safe for concurrent use.
type TranslatedText struct {
	registry    *locale.Registry
	resolver    *locale.Resolver
	broadcaster *locale.Broadcaster

	mu            sync.Mutex
	key           string
	content       string
	state         State
	currentLocale string
	unsubscribe   func()

	// generation invalidates in-flight renders on detach or when a
	// newer render supersedes them, so a late completion can never
	// write stale content into a (possibly reused) element.
	generation uint64
}

// NewTranslatedText returns an unattached element whose content starts
// as the inline fallback string.
func NewTranslatedText(reg *locale.Registry, res *locale.Resolver, b *locale.Broadcaster, key, fallback string) *TranslatedText {
	return &TranslatedText{
		registry:    reg,
		resolver:    res,
		broadcaster: b,
		key:         key,
		content:     fallback,
	}
}

// Attach inserts the element into the document: it snapshots the
// current locale, subscribes to the broadcaster and starts an
// asynchronous resolve+render. Attaching twice is a no-op.
func (t *TranslatedText) Attach() {
	t.mu.Lock()

	if t.state != StateUnattached {
		t.mu.Unlock()

		return
	}

	t.currentLocale = t.resolver.CurrentLocale()
	t.state = StateAttachedPending
	t.unsubscribe = t.broadcaster.Subscribe(t.onLanguageChange)
	t.generation++
	gen, loc, key := t.generation, t.currentLocale, t.key

	t.mu.Unlock()

	go t.render(context.Background(), gen, loc, key)
}

// Detach removes the element from the document and cancels its
// subscription. Any in-flight resolve runs to completion but its
// result is discarded. Detaching twice is a no-op.
func (t *TranslatedText) Detach() {
	t.mu.Lock()

	if t.state == StateUnattached {
		t.mu.Unlock()

		return
	}

	unsubscribe := t.unsubscribe
	t.unsubscribe = nil
	t.state = StateUnattached
	t.generation++

	t.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// SetKey changes the element's translation key. Equal old and new
// values are ignored; otherwise, while attached, the resolve+render
// sequence re-runs with the current locale.
func (t *TranslatedText) SetKey(key string) {
	t.mu.Lock()

	if key == t.key {
		t.mu.Unlock()

		return
	}

	t.key = key

	if t.state == StateUnattached {
		t.mu.Unlock()

		return
	}

	t.state = StateAttachedPending
	t.generation++
	gen, loc := t.generation, t.currentLocale

	t.mu.Unlock()

	go t.render(context.Background(), gen, loc, key)
}

// Flush runs the resolve+render sequence synchronously for the current
// locale and key. It is idempotent: flushing with an unchanged key and
// locale produces no observable change. Hosts rendering a page
// server-side call Flush after Attach to wait for the translation.
func (t *TranslatedText) Flush(ctx context.Context) {
	t.mu.Lock()

	if t.state == StateUnattached {
		t.mu.Unlock()

		return
	}

	gen, loc, key := t.generation, t.currentLocale, t.key

	t.mu.Unlock()

	t.render(ctx, gen, loc, key)
}

// onLanguageChange is the broadcaster callback. Unsupported locales are
// ignored without any state change.
func (t *TranslatedText) onLanguageChange(newLocale string) {
	if !t.registry.IsSupported(newLocale) {
		return
	}

	t.mu.Lock()

	if t.state == StateUnattached {
		t.mu.Unlock()

		return
	}

	t.currentLocale = newLocale
	t.state = StateAttachedPending
	t.generation++
	gen, key := t.generation, t.key

	t.mu.Unlock()

	go t.render(context.Background(), gen, newLocale, key)
}

// render resolves the dictionary for loc and applies the translation
// for key, unless gen has been invalidated in the meantime.
//
// The generation is checked before resolving as well as after: a render
// scheduled and then superseded (or detached) before it ran must not
// resolve at all, since by the time it executes the skip and cache
// decisions it was scheduled under may no longer hold.
func (t *TranslatedText) render(ctx context.Context, gen uint64, loc, key string) {
	t.mu.Lock()

	if t.generation != gen || t.state == StateUnattached {
		t.mu.Unlock()

		return
	}

	t.mu.Unlock()

	dict := t.registry.ResolveDictionary(ctx, loc)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.generation != gen || t.state == StateUnattached {
		return
	}

	if translated, ok := dict.Lookup(key); ok {
		t.content = translated
	}

	t.state = StateAttachedRendered
}

// Key returns the element's translation key.
func (t *TranslatedText) Key() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.key
}

// Text returns the element's current text content.
func (t *TranslatedText) Text() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.content
}

// State returns the element's lifecycle state.
func (t *TranslatedText) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Locale returns the element's private current locale.
func (t *TranslatedText) Locale() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.currentLocale
}

// HTML renders the inline text container.
func (t *TranslatedText) HTML() string {
	t.mu.Lock()
	key, content := t.key, t.content
	t.mu.Unlock()

	return fmt.Sprintf(`<span data-key="%s">%s</span>`,
		html.EscapeString(key), html.EscapeString(content))
}
