// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

package locale

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"golang.org/x/time/rate"
)

const defaultFetchTimeout = 10 * time.Second

// fetcher retrieves per-locale dictionary files over HTTP(S).
//
// Responses may arrive zstd- or gzip-encoded and are transparently
// decompressed before parsing.
type fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
}

func newFetcher(client *http.Client, limiter *rate.Limiter) *fetcher {
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}

	return &fetcher{client: client, limiter: limiter}
}

// fetch performs a GET against url and returns the decoded body.
func (f *fetcher) fetch(ctx context.Context, url string) ([]byte, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	// Setting Accept-Encoding ourselves disables the transport's
	// automatic gzip handling, so both codecs are decoded below.
	req.Header.Set("Accept-Encoding", "zstd, gzip")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := decodeBody(resp)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	return body, nil
}

// decodeBody reads the response body, reversing any transfer compression.
func decodeBody(resp *http.Response) ([]byte, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "zstd":
		dec, err := zstd.NewReader(resp.Body, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}
		defer dec.Close()

		return io.ReadAll(dec.IOReadCloser())
	case "gzip":
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gz.Close()

		return io.ReadAll(gz)
	default:
		return io.ReadAll(resp.Body)
	}
}
