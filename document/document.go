// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package document models the root of a rendered document: a small bag of
root-level attributes such as the language and text-direction markers.

It exists so that the localization subsystem can be constructed per
document (and per test case) instead of reading ambient global state.
*/
package document

import "sync"

// Root-level attribute names written by the localization subsystem.
const (
	LangAttr = "lang"
	DirAttr  = "dir"
)

// Document is the root of a rendered document.
// It is safe for concurrent use. The zero value is not ready; use New.
type Document struct {
	mu    sync.RWMutex
	attrs map[string]string
}

// New returns an empty document with no root attributes set.
func New() *Document {
	return &Document{attrs: make(map[string]string)}
}

// Attr returns the value of the named root attribute, or "" if unset.
func (d *Document) Attr(name string) string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.attrs[name]
}

// SetAttr overwrites the named root attribute.
func (d *Document) SetAttr(name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.attrs[name] = value
}

// Lang returns the document's language marker, or "" if none was recorded.
func (d *Document) Lang() string {
	return d.Attr(LangAttr)
}
