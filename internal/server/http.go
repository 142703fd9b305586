// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/logger"
)

const (
	// shutdownTimeout bounds how long in-flight requests may run after a
	// stop signal.
	shutdownTimeout = 10 * time.Second

	readHeaderTimeout = 5 * time.Second
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		logger: logger,
	}
}

// serve blocks until the listener closes. A graceful shutdown returns nil.
func (h *httpServer) serve() error {
	err := h.server.ListenAndServe()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	h.logger.Err(err).Str("address", h.server.Addr).Msg("HTTP server ListenAndServe failed")
	return fmt.Errorf("%w: %w", errListenFailed, err)
}

func (h *httpServer) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown failed")
		return err
	}
	return nil
}
