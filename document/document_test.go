// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package document

import (
	"fmt"
	"sync"
	"testing"
)

func TestAttrRoundTrip(t *testing.T) {
	t.Parallel()

	doc := New()

	if got := doc.Attr(LangAttr); got != "" {
		t.Errorf("unset attribute = %q, want empty", got)
	}

	doc.SetAttr(LangAttr, "bn")
	doc.SetAttr(DirAttr, "ltr")

	if got := doc.Lang(); got != "bn" {
		t.Errorf("Lang = %q, want bn", got)
	}

	// Markers are overwritten, not accumulated.
	doc.SetAttr(LangAttr, "ar")

	if got := doc.Attr(LangAttr); got != "ar" {
		t.Errorf("Attr(lang) = %q, want ar", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	doc := New()

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			doc.SetAttr(LangAttr, fmt.Sprintf("l%d", i))
			_ = doc.Lang()
		}()
	}

	wg.Wait()

	if doc.Lang() == "" {
		t.Error("expected some language marker to survive")
	}
}
