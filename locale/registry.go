// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"codeberg.org/livedoc/livedoc/document"
)

// LocalePlaceholder is the substitution placeholder a path template must
// contain exactly once; it is replaced with the locale identifier.
const LocalePlaceholder = "{locale}"

// DefaultPathTemplate is the path template used until Configure sets one.
const DefaultPathTemplate = "/locales/{locale}.json"

// Configuration errors returned by [Registry.Configure].
var (
	ErrNoLocales          = errors.New("at least one locale is required")
	ErrDuplicateLocale    = errors.New("locales must be unique")
	ErrDefaultUnsupported = errors.New("defaultLocale must be a member of locales")
	ErrBadPathTemplate    = errors.New("path must contain the {locale} placeholder exactly once")
)

// Options is the public configuration surface of a [Registry].
type Options struct {
	// Locales is the ordered set of supported locale identifiers.
	// Entries must be unique.
	Locales []string

	// DefaultLocale is the configured fallback; it must be a member of
	// Locales.
	DefaultLocale string

	// Path locates per-locale dictionary files. It must contain the
	// {locale} placeholder exactly once. Empty keeps the prior template.
	Path string

	// Client overrides the HTTP client used for dictionary fetches.
	// Nil keeps the prior client.
	Client *http.Client

	// FetchLimiter throttles dictionary fetches. Nil keeps the prior
	// limiter (none by default).
	FetchLimiter *rate.Limiter
}

// Registry holds the shared localization configuration and the
// per-locale translation cache.
//
// A Registry is constructed per document and injected into every UI
// element that needs translations; there are no package-level statics,
// so tests can build isolated registries per test case.
//
// Safe for concurrent use.
type Registry struct {
	mu            sync.RWMutex
	locales       []string
	localeSet     map[string]struct{}
	defaultLocale string
	pathTemplate  string
	dictionaries  map[string]Dictionary
	userSwitched  bool

	group   singleflight.Group
	fetcher *fetcher
	doc     *document.Document
	logger  zerolog.Logger
}

// NewRegistry returns an unconfigured registry bound to doc.
//
// Configure must be called before any UI element attaches.
func NewRegistry(doc *document.Document) *Registry {
	return &Registry{
		localeSet:    make(map[string]struct{}),
		pathTemplate: DefaultPathTemplate,
		dictionaries: make(map[string]Dictionary),
		fetcher:      newFetcher(nil, nil),
		doc:          doc,
		logger:       log.With().Str("sys", "locale").Logger(),
	}
}

// Configure replaces the shared configuration.
//
// An empty Path keeps the prior template. Configure fails fast on an
// empty or duplicated locale set, on a default that is not a member of
// the set, and on a malformed path template; dictionaries already
// cached for still-valid locale identifiers are retained.
func (r *Registry) Configure(opts Options) error {
	if len(opts.Locales) == 0 {
		return ErrNoLocales
	}

	set := make(map[string]struct{}, len(opts.Locales))

	for _, l := range opts.Locales {
		if _, dup := set[l]; dup {
			return fmt.Errorf("%w: %q appears twice", ErrDuplicateLocale, l)
		}

		set[l] = struct{}{}
	}

	if _, ok := set[opts.DefaultLocale]; !ok {
		return fmt.Errorf("%w: %q", ErrDefaultUnsupported, opts.DefaultLocale)
	}

	if opts.Path != "" && strings.Count(opts.Path, LocalePlaceholder) != 1 {
		return fmt.Errorf("%w: %q", ErrBadPathTemplate, opts.Path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.locales = append([]string(nil), opts.Locales...)
	r.localeSet = set
	r.defaultLocale = opts.DefaultLocale

	if opts.Path != "" {
		r.pathTemplate = opts.Path
	}

	if opts.Client != nil || opts.FetchLimiter != nil {
		client := r.fetcher.client
		limiter := r.fetcher.limiter

		if opts.Client != nil {
			client = opts.Client
		}

		if opts.FetchLimiter != nil {
			limiter = opts.FetchLimiter
		}

		r.fetcher = newFetcher(client, limiter)
	}

	return nil
}

// Locales returns the ordered set of supported locale identifiers.
// The returned slice is a copy and is safe to retain.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string(nil), r.locales...)
}

// DefaultLocale returns the configured default locale identifier.
func (r *Registry) DefaultLocale() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.defaultLocale
}

// IsSupported reports whether locale is a member of the configured set.
func (r *Registry) IsSupported(locale string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.localeSet[locale]

	return ok
}

// MarkUserSwitched records that a user-driven language switch happened
// this session, permanently enabling default-locale fetches until the
// process restarts.
func (r *Registry) MarkUserSwitched() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.userSwitched = true
}

// HasUserSwitched reports whether a user-driven switch happened this session.
func (r *Registry) HasUserSwitched() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.userSwitched
}

// ResolveDictionary returns the dictionary for locale, fetching it at
// most once per process.
//
// Guarantees, per locale:
//   - an unsupported locale resolves to an empty dictionary with no
//     network access;
//   - a cached dictionary is returned as-is;
//   - N concurrent callers for a never-yet-loaded locale trigger
//     exactly one fetch and all observe its result;
//   - fetch and parse failures are logged at warn level and absorbed
//     into a cached empty dictionary, so a broken locale is never
//     retried and no error ever reaches the caller.
//
// While no user-driven switch has happened this session and the
// document records no non-default locale, requests for the default
// locale are skipped without fetching or caching anything (see the
// package documentation).
func (r *Registry) ResolveDictionary(ctx context.Context, locale string) Dictionary {
	r.mu.RLock()
	_, supported := r.localeSet[locale]
	dict, cached := r.dictionaries[locale]
	skip := locale == r.defaultLocale && !r.userSwitched && !r.docRecordsNonDefaultLocked()
	r.mu.RUnlock()

	if !supported {
		return Dictionary{}
	}

	if cached {
		return dict
	}

	if skip {
		return Dictionary{}
	}

	v, _, _ := r.group.Do(locale, func() (any, error) {
		return r.loadDictionary(ctx, locale), nil
	})

	d, _ := v.(Dictionary)

	return d
}

// loadDictionary performs the fetch+parse+memoize step for one locale.
// Only ever executed by the single winner of the per-locale flight.
func (r *Registry) loadDictionary(ctx context.Context, locale string) Dictionary {
	// A flight may have completed between the caller's cache check and
	// group.Do; honor the memoized result.
	r.mu.RLock()
	cached, ok := r.dictionaries[locale]
	tmpl := r.pathTemplate
	f := r.fetcher
	r.mu.RUnlock()

	if ok {
		return cached
	}

	// The flight is shared between callers and its result is memoized
	// for the process lifetime, so one caller's lifetime must not abort
	// it: a fetch, once started, runs to completion. The fetcher's own
	// client timeout still bounds it.
	ctx = context.WithoutCancel(ctx)

	url := strings.Replace(tmpl, LocalePlaceholder, locale, 1)

	dict, err := r.fetchDictionary(ctx, f, url)
	if err != nil {
		r.logger.Warn().
			Err(err).
			Str("locale", locale).
			Str("url", url).
			Msg("Failed to load dictionary; falling back to inline content")

		dict = Dictionary{}
	}

	r.mu.Lock()
	r.dictionaries[locale] = dict
	r.mu.Unlock()

	return dict
}

func (r *Registry) fetchDictionary(ctx context.Context, f *fetcher, url string) (Dictionary, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return parseDictionary(body)
}

// docRecordsNonDefaultLocked reports whether the document already
// carries a language marker other than the default locale.
// Callers must hold r.mu.
func (r *Registry) docRecordsNonDefaultLocked() bool {
	if r.doc == nil {
		return false
	}

	lang := r.doc.Lang()

	return lang != "" && lang != r.defaultLocale
}
