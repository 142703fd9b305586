// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/handler"
	"github.com/MKhiriev/go-movies-api/internal/logger"
)

type server struct {
	http   *httpServer
	logger *logger.Logger
}

// NewServer builds the HTTP server around the router of handlers. It fails
// with errNoServersAreCreated when there is no address or router to serve.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.HTTPAddress == "" || handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating http server")
	return &server{
		http:   newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// run serves until ctx is cancelled or the listener fails, whichever comes
// first, and drains in-flight requests on cancellation.
func (s *server) run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.http.serve()
	}()
	s.logger.Info().Str("address", s.http.server.Addr).Msg("launching HTTP server")

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	if err := s.http.shutdown(context.Background()); err != nil {
		return err
	}
	if err := <-serveErr; err != nil {
		return err
	}

	s.logger.Info().Msg("server shut down gracefully")
	return nil
}
