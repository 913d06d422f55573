// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"path/filepath"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()

	if _, ok := store.Load(); ok {
		t.Fatal("fresh store should hold no choice")
	}

	if err := store.Save("bn"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if got, ok := store.Load(); !ok || got != "bn" {
		t.Errorf("Load = %q, %v; want bn, true", got, ok)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "choice")
	store := NewFileStore(path)

	if _, ok := store.Load(); ok {
		t.Fatal("missing file should hold no choice")
	}

	if err := store.Save("ar"); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	// A second store over the same path observes the saved choice,
	// the "page load" analogue for a process restart.
	if got, ok := NewFileStore(path).Load(); !ok || got != "ar" {
		t.Errorf("Load = %q, %v; want ar, true", got, ok)
	}
}
