// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/models"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. Genres and directors are embedded into movie rows and
// looked up by name.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

func (r *movieRepository) ListMovies(ctx context.Context) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMovies)
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error querying movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error scanning movie")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*movieRepository.ListMovies").Msg("error iterating movies")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

func (r *movieRepository) FindMovieByTitle(ctx context.Context, title string) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie, err := scanMovie(r.db.QueryRowContext(ctx, findMovieByTitle, title))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Movie{}, ErrMovieNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.FindMovieByTitle").Msg("error finding movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return movie, nil
}

func (r *movieRepository) FindGenreByName(ctx context.Context, name string) (models.Genre, error) {
	log := logger.FromContext(ctx)

	var genre models.Genre
	err := r.db.QueryRowContext(ctx, findGenreByName, name).
		Scan(&genre.Name, &genre.Description, &genre.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Genre{}, ErrGenreNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.FindGenreByName").Msg("error finding genre")
		return models.Genre{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return genre, nil
}

func (r *movieRepository) FindDirectorByName(ctx context.Context, name string) (models.Director, error) {
	log := logger.FromContext(ctx)

	var director models.Director
	err := r.db.QueryRowContext(ctx, findDirectorByName, name).
		Scan(&director.Name, &director.BirthDate, &director.BirthPlace, &director.Bio, &director.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Director{}, ErrDirectorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*movieRepository.FindDirectorByName").Msg("error finding director")
		return models.Director{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return director, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanMovie(row rowScanner) (models.Movie, error) {
	var m models.Movie
	err := row.Scan(
		&m.ID, &m.Title, &m.Description,
		&m.Genre.Name, &m.Genre.Description, &m.Genre.ImageURL,
		&m.Director.Name, &m.Director.BirthDate, &m.Director.BirthPlace, &m.Director.Bio, &m.Director.ImageURL,
		&m.ImageURL, &m.Featured,
	)
	return m, err
}
