// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/crypto"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/store"
)

// Services is the set of business services consumed by the transport layer.
type Services struct {
	AuthService      AuthService
	UserService      UserService
	FavoritesService FavoritesService
	MovieService     MovieService
	AppInfoService   AppInfoService
}

// NewServices wires services over storages. Account and favorites services
// are wrapped with validation so invalid input never reaches storage.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger, opts ...TokenServiceOption) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	tokens := NewTokenService(cfg, logger, opts...)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, hasher, tokens, logger),
		UserService:      NewUserValidationService().Wrap(NewUserService(storages.UserRepository, hasher, logger)),
		FavoritesService: NewFavoritesValidationService().Wrap(NewFavoritesService(storages.UserRepository, logger)),
		MovieService:     NewMovieService(storages.MovieRepository, logger),
		AppInfoService:   appInfo,
	}, nil
}
