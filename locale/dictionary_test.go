// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import "testing"

func TestParseDictionary(t *testing.T) {
	t.Parallel()

	dict, err := parseDictionary([]byte(`{"greeting":"হ্যালো!","farewell":"বিদায়"}`))
	if err != nil {
		t.Fatalf("parseDictionary error: %v", err)
	}

	if got, ok := dict.Lookup("greeting"); !ok || got != "হ্যালো!" {
		t.Errorf("Lookup(greeting) = %q, %v; want হ্যালো!, true", got, ok)
	}
}

func TestParseDictionarySkipsNonStringValues(t *testing.T) {
	t.Parallel()

	dict, err := parseDictionary([]byte(`{"a":"ok","b":7,"c":{"nested":true},"d":null}`))
	if err != nil {
		t.Fatalf("parseDictionary error: %v", err)
	}

	if len(dict) != 1 {
		t.Errorf("expected 1 usable entry, got %d: %v", len(dict), dict)
	}

	if _, ok := dict.Lookup("b"); ok {
		t.Error("non-string value should not be exposed")
	}
}

func TestParseDictionaryRejectsMalformedBodies(t *testing.T) {
	t.Parallel()

	for _, body := range []string{`{`, `["a","b"]`, `"just a string"`} {
		if _, err := parseDictionary([]byte(body)); err == nil {
			t.Errorf("parseDictionary(%q) expected error, got nil", body)
		}
	}
}

func TestLookupTreatsEmptyTranslationAsMiss(t *testing.T) {
	t.Parallel()

	dict := Dictionary{"blank": ""}

	if _, ok := dict.Lookup("blank"); ok {
		t.Error("empty translation should report a miss")
	}

	if _, ok := dict.Lookup("absent"); ok {
		t.Error("absent key should report a miss")
	}
}
