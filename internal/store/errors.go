// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an INSERT or UPDATE hits the
	// unique constraint on users.username.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user row matches the username.
	ErrUserNotFound = errors.New("user was not found")

	// ErrNothingToUpdate is returned by UpdateUser for an empty update.
	ErrNothingToUpdate = errors.New("nothing to update")

	// ErrMovieNotFound is returned when no movie matches the title.
	ErrMovieNotFound = errors.New("movie was not found")

	// ErrGenreNotFound is returned when no movie carries the genre.
	ErrGenreNotFound = errors.New("genre was not found")

	// ErrDirectorNotFound is returned when no movie carries the director.
	ErrDirectorNotFound = errors.New("director was not found")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails for a
	// reason not covered by the domain errors above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
