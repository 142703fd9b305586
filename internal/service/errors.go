// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong username or password")

	ErrUsernameTaken = errors.New("username is already taken")
	ErrUserNotFound  = errors.New("user was not found")

	ErrMovieNotFound    = errors.New("movie was not found")
	ErrGenreNotFound    = errors.New("genre was not found")
	ErrDirectorNotFound = errors.New("director was not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Token errors. Validation failures always wrap ErrUnauthorized plus one of
// the more specific kinds.
var (
	ErrUnauthorized = errors.New("unauthorized")

	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidClaims    = errors.New("token claims are invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
