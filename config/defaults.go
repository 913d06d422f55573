// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const defaultFetchTimeoutSeconds = 10

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	cfg.Basic.Host = "localhost"
	cfg.Basic.Port = "8282"

	cfg.Localization.Locales = []string{"en"}
	cfg.Localization.DefaultLocale = "en"
	cfg.Localization.Path = "/locales/{locale}.json"
	cfg.Localization.FetchTimeout = defaultFetchTimeoutSeconds * time.Second
	cfg.Localization.FetchRate = 0

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"
}
