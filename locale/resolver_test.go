// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"errors"
	"testing"

	"codeberg.org/livedoc/livedoc/document"
)

func newConfiguredRegistry(t *testing.T, doc *document.Document) *Registry {
	t.Helper()

	reg := NewRegistry(doc)

	err := reg.Configure(Options{
		Locales:       []string{"en", "bn", "ar"},
		DefaultLocale: "en",
	})
	if err != nil {
		t.Fatalf("Configure error: %v", err)
	}

	return reg
}

func TestCurrentLocalePrecedence(t *testing.T) {
	t.Parallel()

	doc := document.New()
	reg := newConfiguredRegistry(t, doc)
	store := NewMemoryStore()

	resolver := NewResolver(reg, store, doc, []string{"bn-BD", "en"})

	// No persisted choice, no document marker: the environment's
	// preferred-language signal wins via its primary subtag.
	if got := resolver.CurrentLocale(); got != "bn" {
		t.Errorf("CurrentLocale = %q, want bn (from bn-BD)", got)
	}

	// A document marker outranks the environment signal.
	doc.SetAttr(document.LangAttr, "ar")

	if got := resolver.CurrentLocale(); got != "ar" {
		t.Errorf("CurrentLocale = %q, want ar (document marker)", got)
	}

	// A persisted choice outranks everything.
	if err := store.Save("en"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if got := resolver.CurrentLocale(); got != "en" {
		t.Errorf("CurrentLocale = %q, want en (persisted choice)", got)
	}
}

func TestCurrentLocaleFallsBackToDefault(t *testing.T) {
	t.Parallel()

	doc := document.New()
	reg := newConfiguredRegistry(t, doc)

	resolver := NewResolver(reg, NewMemoryStore(), doc, nil)

	if got := resolver.CurrentLocale(); got != "en" {
		t.Errorf("CurrentLocale = %q, want the configured default en", got)
	}

	// An unparsable preferred entry is skipped, not surfaced.
	resolver = NewResolver(reg, NewMemoryStore(), doc, []string{"!!"})

	if got := resolver.CurrentLocale(); got != "en" {
		t.Errorf("CurrentLocale = %q, want en for unparsable preference", got)
	}
}

func TestApplyDocumentMarkers(t *testing.T) {
	t.Parallel()

	doc := document.New()
	reg := newConfiguredRegistry(t, doc)
	resolver := NewResolver(reg, nil, doc, nil)

	resolver.ApplyDocumentMarkers("ar")

	if got := doc.Attr(document.LangAttr); got != "ar" {
		t.Errorf("lang marker = %q, want ar", got)
	}

	if got := doc.Attr(document.DirAttr); got != DirRTL {
		t.Errorf("dir marker = %q, want rtl", got)
	}

	// Unknown identifiers still apply, with direction defaulting to ltr.
	resolver.ApplyDocumentMarkers("??")

	if got := doc.Attr(document.DirAttr); got != DirLTR {
		t.Errorf("dir marker = %q, want ltr for unknown locale", got)
	}
}

type failingStore struct{}

func (failingStore) Load() (string, bool) { return "", false }
func (failingStore) Save(string) error    { return errors.New("store unavailable") }

func TestPersistAbsorbsStoreFailures(t *testing.T) {
	t.Parallel()

	doc := document.New()
	reg := newConfiguredRegistry(t, doc)
	resolver := NewResolver(reg, failingStore{}, doc, nil)

	// Must not panic or surface the failure; the switch proceeds on
	// in-memory state.
	resolver.Persist("bn")

	if got := resolver.CurrentLocale(); got != "en" {
		t.Errorf("CurrentLocale = %q, want en after failed persist", got)
	}
}
