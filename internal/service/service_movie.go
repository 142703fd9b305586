// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/models"
)

type movieService struct {
	movieRepository store.MovieRepository

	logger *logger.Logger
}

func NewMovieService(movieRepository store.MovieRepository, logger *logger.Logger) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		logger:          logger,
	}
}

func (m *movieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := m.movieRepository.ListMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing movies failed: %w", err)
	}

	return movies, nil
}

func (m *movieService) GetMovieByTitle(ctx context.Context, title string) (models.Movie, error) {
	movie, err := m.movieRepository.FindMovieByTitle(ctx, title)
	if errors.Is(err, store.ErrMovieNotFound) {
		return models.Movie{}, ErrMovieNotFound
	}
	if err != nil {
		return models.Movie{}, fmt.Errorf("movie search by title failed: %w", err)
	}

	return movie, nil
}

func (m *movieService) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	genre, err := m.movieRepository.FindGenreByName(ctx, name)
	if errors.Is(err, store.ErrGenreNotFound) {
		return models.Genre{}, ErrGenreNotFound
	}
	if err != nil {
		return models.Genre{}, fmt.Errorf("genre search failed: %w", err)
	}

	return genre, nil
}

func (m *movieService) GetDirector(ctx context.Context, name string) (models.Director, error) {
	director, err := m.movieRepository.FindDirectorByName(ctx, name)
	if errors.Is(err, store.ErrDirectorNotFound) {
		return models.Director{}, ErrDirectorNotFound
	}
	if err != nil {
		return models.Director{}, fmt.Errorf("director search failed: %w", err)
	}

	return director, nil
}
