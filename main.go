// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
livedoc is a runtime localization toolkit for rendered documents, with a
small demo server showing the language selector and live text nodes.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/livedoc/livedoc/config"
	"codeberg.org/livedoc/livedoc/document"
	"codeberg.org/livedoc/livedoc/locale"
	"codeberg.org/livedoc/livedoc/server/router"
	"codeberg.org/livedoc/livedoc/server/routes"
)

const (
	// Values for http.Server timeouts.
	// ref: gosec: G112
	readHeaderTimeout time.Duration = 15 * time.Second
	readTimeout       time.Duration = 15 * time.Second
	writeTimeout      time.Duration = 10 * time.Second
	idleTimeout       time.Duration = 30 * time.Second

	serverShutdownDeadline time.Duration = 5 * time.Second
)

// main is the entry point of the application.
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("Application failed")
	}
}

// run orchestrates the application startup and graceful shutdown.
func run() error {
	config.SetDefaultLogger()

	if err := config.Global.LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	registry, err := buildRegistry(&config.Global)
	if err != nil {
		return fmt.Errorf("failed to configure locale registry: %w", err)
	}

	appRouter := router.NewRouter()
	appRouter.RegisterMiddleware()
	appRouter.DefineRoutes(&routes.Handler{
		Registry: registry,
		Texts: []routes.TextSpec{
			{Key: "greeting", Fallback: "Hello!"},
			{Key: "tagline", Fallback: "Live translations for rendered documents."},
			{Key: "farewell", Fallback: "See you soon."},
		},
	})

	addr := net.JoinHostPort(config.Global.Basic.Host, config.Global.Basic.Port)

	server := &http.Server{
		Addr:              addr,
		Handler:           appRouter,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", addr).Msg("Starting livedoc demo server")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownDeadline)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

// buildRegistry configures the shared locale registry from the loaded
// configuration. The demo server builds one document per request, so
// the registry itself is not bound to any document.
func buildRegistry(cfg *config.ServerConfig) (*locale.Registry, error) {
	var limiter *rate.Limiter
	if cfg.Localization.FetchRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Localization.FetchRate), cfg.Localization.FetchRate)
	}

	var doc *document.Document // per-request documents; none shared

	registry := locale.NewRegistry(doc)

	err := registry.Configure(locale.Options{
		Locales:       cfg.Localization.Locales,
		DefaultLocale: cfg.Localization.DefaultLocale,
		Path:          cfg.Localization.Path,
		Client:        &http.Client{Timeout: cfg.Localization.FetchTimeout},
		FetchLimiter:  limiter,
	})
	if err != nil {
		return nil, err
	}

	return registry, nil
}
