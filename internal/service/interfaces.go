// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-movies-api/models"
)

// AuthService verifies credentials and hands out tokens.
type AuthService interface {
	// Login returns the user whose password matches creds.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	// CreateToken issues a bearer token for user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken validates a bearer token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService is the user directory: account lifecycle keyed by username.
type UserService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	FindUser(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, username string) error
}

// FavoritesService mutates a user's favorite movies list. Movie ids are not
// checked against the catalog.
type FavoritesService interface {
	AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)
	RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)
}

// MovieService reads the movie catalog.
type MovieService interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByTitle(ctx context.Context, title string) (models.Movie, error)
	GetGenre(ctx context.Context, name string) (models.Genre, error)
	GetDirector(ctx context.Context, name string) (models.Director, error)
}

// AppInfoService exposes static information about the running build.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Welcome(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

// FavoritesServiceWrapper defines middleware composition for
// FavoritesService.
type FavoritesServiceWrapper interface {
	Wrap(FavoritesService) FavoritesService
}
