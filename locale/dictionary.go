// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"errors"

	"github.com/tidwall/gjson"
)

var (
	errInvalidJSON = errors.New("dictionary body contained invalid JSON")
	errNotObject   = errors.New("dictionary body is not a JSON object")
)

// Dictionary maps translation keys to translated strings for one locale.
//
// Dictionaries are created once per locale and shared by every reader
// for the lifetime of the process; treat them as immutable.
type Dictionary map[string]string

// Lookup returns the translation for key and whether a non-empty
// translation exists.
func (d Dictionary) Lookup(key string) (string, bool) {
	v, ok := d[key]

	return v, ok && v != ""
}

// parseDictionary decodes a flat key→string JSON object.
//
// Entries whose values are not strings are skipped rather than failing
// the whole file; translation hosts are not always tidy.
func parseDictionary(body []byte) (Dictionary, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errNotObject
	}

	dict := make(Dictionary)

	root.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			dict[key.String()] = value.String()
		}

		return true
	})

	return dict, nil
}
