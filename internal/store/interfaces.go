// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-movies-api/models"
)

// UserRepository persists user accounts. Every mutating method is a single
// SQL statement, so concurrent mutations of the same user never lose an
// update.
type UserRepository interface {
	// CreateUser inserts user with an empty favorites list and returns the
	// stored row. A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// UpdateUser applies the non-nil fields of update and returns the row as
	// stored after the update.
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error)

	// DeleteUser removes the user or returns ErrUserNotFound.
	DeleteUser(ctx context.Context, username string) error

	// AddFavoriteMovie appends movieID to the end of the favorites list.
	AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)

	// RemoveFavoriteMovie drops every occurrence of movieID from the
	// favorites list, keeping the order of the remaining entries.
	RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)
}

// MovieRepository reads the movie catalog.
type MovieRepository interface {
	ListMovies(ctx context.Context) ([]models.Movie, error)
	FindMovieByTitle(ctx context.Context, title string) (models.Movie, error)
	FindGenreByName(ctx context.Context, name string) (models.Genre, error)
	FindDirectorByName(ctx context.Context, name string) (models.Director, error)
}
