// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/models"
)

// favoritesService mutates favorites through single-statement repository
// calls, never by reading and rewriting the whole record.
type favoritesService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewFavoritesService(userRepository store.UserRepository, logger *logger.Logger) FavoritesService {
	return &favoritesService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// AddFavoriteMovie appends movieID; adding it twice keeps both entries.
func (f *favoritesService) AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	user, err := f.userRepository.AddFavoriteMovie(ctx, username, movieID)
	if err != nil {
		return models.User{}, mapUserStoreError(err, "adding favorite movie failed")
	}

	logger.FromContext(ctx).Debug().Str("username", username).Str("movie_id", movieID).Msg("favorite movie added")
	return user, nil
}

// RemoveFavoriteMovie removes every occurrence of movieID. Removing an id
// that is not in the list succeeds and returns the unchanged user.
func (f *favoritesService) RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	user, err := f.userRepository.RemoveFavoriteMovie(ctx, username, movieID)
	if err != nil {
		return models.User{}, mapUserStoreError(err, "removing favorite movie failed")
	}

	logger.FromContext(ctx).Debug().Str("username", username).Str("movie_id", movieID).Msg("favorite movie removed")
	return user, nil
}
