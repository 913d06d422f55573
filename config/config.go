// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package config loads the demo server configuration from defaults, an
optional YAML file and environment variable overrides, in that order.
*/
package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// Global exposes the server configuration.
var Global ServerConfig

// ServerConfig holds the application configuration.
type ServerConfig struct {
	Basic struct {
		Host string `env:"LIVEDOC_HOST,overwrite"  yaml:"host"`
		Port string `env:"LIVEDOC_PORT,overwrite"  yaml:"port"`
	} `yaml:"basic"`

	Localization struct {
		// Locales is the ordered set of supported locale identifiers.
		Locales []string `env:"LIVEDOC_LOCALES,overwrite"        yaml:"locales"`
		// DefaultLocale must be a member of Locales.
		DefaultLocale string `env:"LIVEDOC_DEFAULT_LOCALE,overwrite" yaml:"defaultLocale"`
		// Path locates per-locale dictionary files; it must contain the
		// {locale} placeholder exactly once.
		Path string `env:"LIVEDOC_PATH,overwrite"           yaml:"path"`
		// FetchTimeout bounds a single dictionary fetch.
		FetchTimeout time.Duration `env:"LIVEDOC_FETCH_TIMEOUT,overwrite"  yaml:"fetchTimeout"`
		// FetchRate caps dictionary fetches per second; 0 means unlimited.
		FetchRate int `env:"LIVEDOC_FETCH_RATE,overwrite"     yaml:"fetchRate"`
	} `yaml:"localization"`

	Log struct {
		Level   string   `env:"LIVEDOC_LOG_LEVEL,overwrite"   yaml:"logLevel"`
		Outputs []string `env:"LIVEDOC_LOG_OUTPUTS,overwrite" yaml:"logOutputs"`
		Format  string   `env:"LIVEDOC_LOG_FORMAT,overwrite"  yaml:"logFormat"`
	} `yaml:"log"`
}

// LoadConfig loads the configuration from various sources.
func (cfg *ServerConfig) LoadConfig() error {
	parsedConfigFlagValue := parseCommandLineArgs()

	// Check if the -config flag was explicitly set by the user.
	configFlagUserSet := false

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configFlagUserSet = true
		}
	})

	var configFilePath string

	// Determine the config file path with the correct precedence:
	// 1. Command-line flag (-config)
	// 2. Environment variable (LIVEDOC_CONFIGFILE)
	// 3. Default path with fallback check
	if configFlagUserSet {
		configFilePath = parsedConfigFlagValue
	} else if envVar := os.Getenv("LIVEDOC_CONFIGFILE"); envVar != "" {
		configFilePath = envVar
	} else {
		configFilePath = parsedConfigFlagValue
		if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
			ymlPath := "./config.yml"
			if _, statErr := os.Stat(ymlPath); statErr == nil {
				configFilePath = ymlPath
			}
		}
	}

	cfg.SetDefaults()

	if err := cfg.readYAML(configFilePath); err != nil {
		return fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := readEnv(cfg); err != nil {
		return fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return fmt.Errorf("configuration invalid: %w", err)
	}

	cfg.setupLogging()
	cfg.print()

	return nil
}

// GetDurationEncoderOption returns a YAML encoder option that marshals
// time.Duration into a human-readable string format (e.g., "30m", "1h").
func GetDurationEncoderOption() yaml.EncodeOption {
	return yaml.CustomMarshaler[time.Duration](
		func(d time.Duration) ([]byte, error) {
			return yaml.Marshal(d.String())
		},
	)
}
