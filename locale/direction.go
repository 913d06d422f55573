// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import "golang.org/x/text/language"

// Text-direction marker values.
const (
	DirLTR = "ltr"
	DirRTL = "rtl"
)

// rtlBases is the set of base languages written right to left.
var rtlBases = map[string]struct{}{
	"ar":  {},
	"arc": {},
	"ckb": {},
	"dv":  {},
	"fa":  {},
	"he":  {},
	"ps":  {},
	"sd":  {},
	"ug":  {},
	"ur":  {},
	"yi":  {},
}

// DirectionFor returns the text-direction marker for a locale identifier.
//
// Malformed or unrecognized identifiers default to left-to-right; this
// function never fails.
func DirectionFor(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return DirLTR
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return DirLTR
	}

	if _, ok := rtlBases[base.String()]; ok {
		return DirRTL
	}

	return DirLTR
}

// primarySubtag extracts the base language of a single preferred-language
// entry, for example "bn" from "bn-BD". It returns "" when the entry
// cannot be parsed with any confidence.
func primarySubtag(entry string) string {
	tag, err := language.Parse(entry)
	if err != nil {
		return ""
	}

	base, confidence := tag.Base()
	if confidence == language.No {
		return ""
	}

	return base.String()
}
