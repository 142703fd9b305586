// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the movies API.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrValidation] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movies-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the movies
// API. Implementations are responsible for serialisation, bearer token
// management and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Welcome fetches the greeting served at the API root.
	Welcome(ctx context.Context) (string, error)

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates with the server and stores the issued token via
	// SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error)

	GetUser(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error)

	// DeleteUser deregisters username and returns the server confirmation.
	DeleteUser(ctx context.Context, username string) (string, error)

	AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)
	RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error)

	ListMovies(ctx context.Context) ([]models.Movie, error)
	GetMovie(ctx context.Context, title string) (models.Movie, error)
	GetGenre(ctx context.Context, name string) (models.Genre, error)
	GetDirector(ctx context.Context, name string) (models.Director, error)
}
