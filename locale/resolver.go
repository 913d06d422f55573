// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"codeberg.org/livedoc/livedoc/document"
)

// Resolver computes the active locale from layered sources and persists
// a user-chosen locale back to the highest-precedence source.
//
// Precedence, highest first: the persisted user choice, the document's
// language marker, the environment's preferred-language signal, the
// registry's configured default.
type Resolver struct {
	registry  *Registry
	store     ChoiceStore
	doc       *document.Document
	preferred []string
	logger    zerolog.Logger
}

// NewResolver builds a resolver over the given sources.
//
// store may be nil when no persistence is available; preferred is the
// environment's preferred-language list, of which only the first
// entry's primary subtag is consulted.
func NewResolver(reg *Registry, store ChoiceStore, doc *document.Document, preferred []string) *Resolver {
	return &Resolver{
		registry:  reg,
		store:     store,
		doc:       doc,
		preferred: append([]string(nil), preferred...),
		logger:    log.With().Str("sys", "locale").Logger(),
	}
}

// CurrentLocale returns the active locale. Pure read, no side effects.
func (r *Resolver) CurrentLocale() string {
	if r.store != nil {
		if chosen, ok := r.store.Load(); ok {
			return chosen
		}
	}

	if r.doc != nil {
		if lang := r.doc.Lang(); lang != "" {
			return lang
		}
	}

	if len(r.preferred) > 0 {
		if subtag := primarySubtag(r.preferred[0]); subtag != "" {
			return subtag
		}
	}

	return r.registry.DefaultLocale()
}

// Persist writes locale as the new persisted choice.
//
// Callers must persist before broadcasting so that a component reading
// CurrentLocale mid-broadcast observes the new value. A store failure
// is logged and absorbed; the switch proceeds on the in-memory state.
func (r *Resolver) Persist(locale string) {
	if r.store == nil {
		return
	}

	if err := r.store.Save(locale); err != nil {
		r.logger.Warn().
			Err(err).
			Str("locale", locale).
			Msg("Failed to persist locale choice")
	}
}

// ApplyDocumentMarkers sets the document's language and text-direction
// markers for locale. Direction falls back to left-to-right for
// malformed or unknown identifiers; this never fails.
func (r *Resolver) ApplyDocumentMarkers(locale string) {
	if r.doc == nil {
		return
	}

	r.doc.SetAttr(document.LangAttr, locale)
	r.doc.SetAttr(document.DirAttr, DirectionFor(locale))
}
