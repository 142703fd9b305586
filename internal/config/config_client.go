// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

const defaultClientTimeout = 10 * time.Second

// ClientConfig holds the configuration of the command-line client.
type ClientConfig struct {
	Adapter Adapter `envPrefix:"ADAPTER_"`
}

// Adapter holds settings for the outbound HTTP adapter used by the client.
type Adapter struct {
	// HTTPAddress is the base URL or host:port of the API server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is a previously issued bearer token.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// GetClientConfig builds the client configuration from environment variables,
// flags found in args and defaults, in that precedence order. The positional
// arguments left after flag parsing are returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg, err := parseEnv[ClientConfig]()
	if err != nil {
		return nil, nil, err
	}

	var address string
	var timeout time.Duration
	var token string

	fs := flag.NewFlagSet("go-movies-client", flag.ContinueOnError)
	fs.StringVar(&address, "a", "", "API server address")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 10s)")
	fs.StringVar(&token, "token", "", "Bearer token")
	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	flagCfg := &ClientConfig{Adapter: Adapter{HTTPAddress: address, RequestTimeout: timeout, Token: token}}
	defaults := &ClientConfig{Adapter: Adapter{HTTPAddress: "localhost:8080", RequestTimeout: defaultClientTimeout}}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagCfg, defaults} {
		err = errors.Join(err, mergo.Merge(cfg, src))
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error merging configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
