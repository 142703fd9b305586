// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a fresh T from the process environment. Variable names come
// from the `env` and `envPrefix` tags, so StructuredConfig reads APP_*,
// STORAGE_* and SERVER_* while ClientConfig reads ADAPTER_*.
func parseEnv[T any]() (*T, error) {
	cfg, err := env.ParseAs[T]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
