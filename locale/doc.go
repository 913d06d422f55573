// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package locale is the localization core: it resolves the active locale
from layered sources, lazily fetches and memoizes per-locale
dictionaries, and broadcasts locale transitions to any number of
independently-lifecycled listeners.

# Quick start

Construct a [Registry] per document, configure it once before any UI
element attaches, and share it between elements:

	doc := document.New()
	reg := locale.NewRegistry(doc)
	err := reg.Configure(locale.Options{
		Locales:       []string{"en", "bn", "ar"},
		DefaultLocale: "en",
		Path:          "https://cdn.example.net/locales/{locale}.json",
	})

Dictionaries are flat key→string JSON objects hosted per locale. The
first request for a locale fetches its file; every concurrent request
for the same locale awaits that one fetch. A failed fetch is absorbed
into an empty dictionary and logged at warn level; nothing in this
package returns fetch errors to callers.

# Resolution order

[Resolver.CurrentLocale] consults, in order: the persisted user choice,
the document's language marker, the primary subtag of the environment's
first preferred language, and the configured default.

# Default-locale fetch skip

Until the user switches languages (and while the document records no
non-default locale), requests for the default locale's dictionary are
skipped entirely. This assumes the inline fallback content of a page is
authored in the default locale and is already correct, so the default's
translation file never needs to be transferred. This is an authoring
convention, not a data fact; pages whose inline content is not in the
default locale should call [Registry.MarkUserSwitched] up front.
*/
package locale
