// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no listen address
	// or router is configured.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListenFailed wraps a ListenAndServe failure other than a regular
	// shutdown.
	errListenFailed = errors.New("http server stopped listening")
)
