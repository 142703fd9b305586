// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	"github.com/MKhiriev/go-movies-api/models"
	sq "github.com/Masterminds/squirrel"
)

const userColumns = `user_id, username, password_hash, email, birth_date, favorite_movies, created_at`

const (
	createUser = `INSERT INTO users (username, password_hash, email, birth_date)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	deleteUser = `DELETE FROM users
    WHERE username = $1;`

	addFavoriteMovie = `UPDATE users
    SET favorite_movies = array_append(favorite_movies, $2)
    WHERE username = $1
    RETURNING ` + userColumns + `;`

	removeFavoriteMovie = `UPDATE users
    SET favorite_movies = array_remove(favorite_movies, $2)
    WHERE username = $1
    RETURNING ` + userColumns + `;`
)

const movieColumns = `movie_id, title, description,
    genre_name, genre_description, genre_image_url,
    director_name, director_birth_date, director_birth_place, director_bio, director_image_url,
    image_url, featured`

const (
	listMovies = `SELECT ` + movieColumns + `
    FROM movies
    ORDER BY title;`

	findMovieByTitle = `SELECT ` + movieColumns + `
    FROM movies
    WHERE title = $1
    LIMIT 1;`

	findGenreByName = `SELECT genre_name, genre_description, genre_image_url
    FROM movies
    WHERE genre_name = $1
    LIMIT 1;`

	findDirectorByName = `SELECT director_name, director_birth_date, director_birth_place, director_bio, director_image_url
    FROM movies
    WHERE director_name = $1
    LIMIT 1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds a single UPDATE ... RETURNING statement that
// sets only the fields present in update.
func buildUpdateUserQuery(username string, update models.UserUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrNothingToUpdate
	}

	builder := psql.Update(models.User{}.TableName())

	if update.UserName != nil {
		builder = builder.Set("username", *update.UserName)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.BirthDate != nil {
		builder = builder.Set("birth_date", *update.BirthDate)
	}

	query, args, err := builder.
		Where(sq.Eq{"username": username}).
		Suffix("RETURNING " + userColumns).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
