// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"codeberg.org/livedoc/livedoc/locale"
)

// validation errors.
var (
	errInvalidPort         = errors.New("basic.port must be numeric")
	errNoLocales           = errors.New("localization.locales must name at least one locale")
	errDefaultNotInLocales = errors.New("localization.defaultLocale must be a member of localization.locales")
	errInvalidPathTemplate = errors.New("localization.path must contain the {locale} placeholder exactly once")
	errNegativeFetchRate   = errors.New("localization.fetchRate must not be negative")
	errInvalidLogLevel     = errors.New("invalid log.logLevel value")
)

var digitsRegexp = regexp.MustCompile(`^[0-9]+$`)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// validate checks the server configuration for contradictions before startup.
func (cfg *ServerConfig) validate() error {
	if !digitsRegexp.MatchString(cfg.Basic.Port) {
		return fmt.Errorf("%w: %q", errInvalidPort, cfg.Basic.Port)
	}

	loc := &cfg.Localization

	if len(loc.Locales) == 0 {
		return errNoLocales
	}

	if !slices.Contains(loc.Locales, loc.DefaultLocale) {
		return fmt.Errorf("%w: %q", errDefaultNotInLocales, loc.DefaultLocale)
	}

	if strings.Count(loc.Path, locale.LocalePlaceholder) != 1 {
		return fmt.Errorf("%w: %q", errInvalidPathTemplate, loc.Path)
	}

	if loc.FetchRate < 0 {
		return fmt.Errorf("%w: %d", errNegativeFetchRate, loc.FetchRate)
	}

	if cfg.Log.Level != "" && !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, cfg.Log.Level)
	}

	return nil
}
