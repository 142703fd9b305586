// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgtype"
)

// typeMaps pools pgtype maps used to scan TEXT[] columns through
// database/sql. A *pgtype.Map must not be shared between goroutines.
var typeMaps = sync.Pool{
	New: func() any { return pgtype.NewMap() },
}

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns the stored row, including the
// server-assigned UserID, CreatedAt and the empty favorites list.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserName, user.PasswordHash, user.Email, user.BirthDate)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, mapUserError(err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	found, err := scanUser(r.db.QueryRowContext(ctx, findUserByUsername, username))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error finding user")
		}
		return models.User{}, mapUserError(err)
	}

	return found, nil
}

// UpdateUser applies a partial update in one UPDATE ... RETURNING statement.
func (r *userRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(username, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, mapUserError(err)
	}

	return updated, nil
}

// DeleteUser removes the user row. Zero affected rows means the user did not
// exist.
func (r *userRepository) DeleteUser(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error reading affected rows")
		return fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// AddFavoriteMovie appends movieID with array_append in a single statement.
func (r *userRepository) AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, addFavoriteMovie, username, movieID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.AddFavoriteMovie").Msg("error adding favorite movie")
		return models.User{}, mapUserError(err)
	}

	return updated, nil
}

// RemoveFavoriteMovie removes every occurrence of movieID with array_remove
// in a single statement. Removing an absent id returns the unchanged row.
func (r *userRepository) RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, removeFavoriteMovie, username, movieID))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.RemoveFavoriteMovie").Msg("error removing favorite movie")
		return models.User{}, mapUserError(err)
	}

	return updated, nil
}

// scanUser reads one row in [userColumns] order. favorites is never nil.
func scanUser(row *sql.Row) (models.User, error) {
	m := typeMaps.Get().(*pgtype.Map)
	defer typeMaps.Put(m)

	var user models.User
	var favorites []string
	err := row.Scan(
		&user.UserID,
		&user.UserName,
		&user.PasswordHash,
		&user.Email,
		&user.BirthDate,
		m.SQLScanner(&favorites),
		&user.CreatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	if favorites == nil {
		favorites = []string{}
	}
	user.FavoriteMovies = favorites

	return user, nil
}

// mapUserError translates driver errors into repository sentinels.
func mapUserError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameAlreadyExists
	default:
		return fmt.Errorf("unexpected DB error: %w: %w", ErrExecutingQuery, err)
	}
}
