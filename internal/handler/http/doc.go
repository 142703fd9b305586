// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST surface of the movies API.
//
// It exposes route wiring, request handlers and middleware. Cross-cutting
// concerns such as authentication, ownership checks, request tracing, access
// logging, CORS and response compression are handled in this package before
// requests are delegated to the service layer.
package http
