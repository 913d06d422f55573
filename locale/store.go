// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"os"
	"strings"
	"sync"
)

// ChoiceKey is the fixed key under which the saved locale is stored in
// key/value backed implementations of [ChoiceStore].
const ChoiceKey = "livedoc-locale"

const choiceFilePermissions = 0o600

// ChoiceStore persists the user's chosen locale across page loads.
//
// Load returns the raw stored locale identifier and whether a choice
// exists. Save overwrites the stored choice.
type ChoiceStore interface {
	Load() (string, bool)
	Save(locale string) error
}

// MemoryStore is an in-process ChoiceStore, useful for tests and for
// embedding in hosts that manage persistence themselves.
// Safe for concurrent use.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Load implements [ChoiceStore].
func (s *MemoryStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[ChoiceKey]

	return v, ok && v != ""
}

// Save implements [ChoiceStore].
func (s *MemoryStore) Save(locale string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[ChoiceKey] = locale

	return nil
}

// FileStore persists the chosen locale in a single file holding the raw
// locale identifier, surviving process restarts.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements [ChoiceStore].
func (s *FileStore) Load() (string, bool) {
	data, err := os.ReadFile(s.path) // #nosec G304 -- path is chosen by the embedding host
	if err != nil {
		return "", false
	}

	v := strings.TrimSpace(string(data))

	return v, v != ""
}

// Save implements [ChoiceStore].
func (s *FileStore) Save(locale string) error {
	return os.WriteFile(s.path, []byte(locale+"\n"), choiceFilePermissions)
}
