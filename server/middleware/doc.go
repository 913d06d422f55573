// Copyright 2025, the livedoc contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package middleware provides the HTTP middleware chain of the demo server:
request logging, Server-Timing metrics, URL normalization and baseline
response headers.
*/
package middleware
