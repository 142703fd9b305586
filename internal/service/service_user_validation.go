// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movies-api/internal/validators"
	"github.com/MKhiriev/go-movies-api/models"
)

// UserValidationService rejects malformed account input before it reaches
// the wrapped UserService.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before registering: %w", err)
	}

	return v.inner.RegisterUser(ctx, request)
}

func (v *UserValidationService) FindUser(ctx context.Context, username string) (models.User, error) {
	return v.inner.FindUser(ctx, username)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}

	return v.inner.UpdateUser(ctx, username, request)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, username string) error {
	return v.inner.DeleteUser(ctx, username)
}

func (v *UserValidationService) Wrap(wrapped UserService) UserService {
	v.inner = wrapped
	return v
}

// FavoritesValidationService rejects favorites mutations without a movie id.
type FavoritesValidationService struct {
	inner     FavoritesService
	validator validators.Validator
}

func NewFavoritesValidationService() FavoritesServiceWrapper {
	return &FavoritesValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *FavoritesValidationService) AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	if err := v.validate(ctx, username, movieID); err != nil {
		return models.User{}, err
	}

	return v.inner.AddFavoriteMovie(ctx, username, movieID)
}

func (v *FavoritesValidationService) RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	if err := v.validate(ctx, username, movieID); err != nil {
		return models.User{}, err
	}

	return v.inner.RemoveFavoriteMovie(ctx, username, movieID)
}

func (v *FavoritesValidationService) Wrap(wrapped FavoritesService) FavoritesService {
	v.inner = wrapped
	return v
}

func (v *FavoritesValidationService) validate(ctx context.Context, username, movieID string) error {
	request := models.FavoriteMovieRequest{UserName: username, MovieID: movieID}
	if err := v.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("error during favorite movie validation: %w", err)
	}
	return nil
}
