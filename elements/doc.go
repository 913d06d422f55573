// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package elements provides the two user-facing localization elements: a
language-selection control and live translated-text nodes that
re-render when the active language changes.

Elements are constructed around a shared [locale.Registry],
[locale.Resolver] and [locale.Broadcaster] and follow an explicit
attach/detach lifecycle mirroring insertion into and removal from a
rendered document. No subscription exists before Attach or after
Detach; a resolve that completes after Detach never mutates the
element.
*/
package elements
