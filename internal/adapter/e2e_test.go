// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-movies-api/internal/config"
	handler "github.com/MKhiriev/go-movies-api/internal/handler/http"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memoryUsers is an in-memory store.UserRepository.
type memoryUsers struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]models.User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]models.User)}
}

func (m *memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.UserName]; ok {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	m.nextID++
	user.UserID = m.nextID
	user.FavoriteMovies = []string{}
	user.CreatedAt = time.Now()
	m.users[user.UserName] = user
	return user, nil
}

func (m *memoryUsers) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryUsers) UpdateUser(_ context.Context, username string, update models.UserUpdate) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	if update.UserName != nil && *update.UserName != username {
		if _, taken := m.users[*update.UserName]; taken {
			return models.User{}, store.ErrUsernameAlreadyExists
		}
		delete(m.users, username)
		user.UserName = *update.UserName
	}
	if update.PasswordHash != nil {
		user.PasswordHash = *update.PasswordHash
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.BirthDate != nil {
		user.BirthDate = update.BirthDate
	}
	m.users[user.UserName] = user
	return user, nil
}

func (m *memoryUsers) DeleteUser(_ context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[username]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.users, username)
	return nil
}

func (m *memoryUsers) AddFavoriteMovie(_ context.Context, username, movieID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	user.FavoriteMovies = append(slices.Clone(user.FavoriteMovies), movieID)
	m.users[username] = user
	return user, nil
}

func (m *memoryUsers) RemoveFavoriteMovie(_ context.Context, username, movieID string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	kept := make([]string, 0, len(user.FavoriteMovies))
	for _, id := range user.FavoriteMovies {
		if id != movieID {
			kept = append(kept, id)
		}
	}
	user.FavoriteMovies = kept
	m.users[username] = user
	return user, nil
}

// memoryMovies is a read-only in-memory store.MovieRepository.
type memoryMovies struct {
	movies []models.Movie
}

func (m *memoryMovies) ListMovies(context.Context) ([]models.Movie, error) {
	return m.movies, nil
}

func (m *memoryMovies) FindMovieByTitle(_ context.Context, title string) (models.Movie, error) {
	for _, movie := range m.movies {
		if movie.Title == title {
			return movie, nil
		}
	}
	return models.Movie{}, store.ErrMovieNotFound
}

func (m *memoryMovies) FindGenreByName(_ context.Context, name string) (models.Genre, error) {
	for _, movie := range m.movies {
		if movie.Genre.Name == name {
			return movie.Genre, nil
		}
	}
	return models.Genre{}, store.ErrGenreNotFound
}

func (m *memoryMovies) FindDirectorByName(_ context.Context, name string) (models.Director, error) {
	for _, movie := range m.movies {
		if movie.Director.Name == name {
			return movie.Director, nil
		}
	}
	return models.Director{}, store.ErrDirectorNotFound
}

func newEndToEndAdapter(t *testing.T) ServerAdapter {
	t.Helper()

	storages := &store.Storages{
		UserRepository: newMemoryUsers(),
		MovieRepository: &memoryMovies{movies: []models.Movie{{
			ID:       "movie42",
			Title:    "Fargo",
			Genre:    models.Genre{Name: "Crime"},
			Director: models.Director{Name: "Joel Coen"},
		}}},
	}
	services, err := service.NewServices(storages, config.App{
		PasswordHashCost: bcrypt.MinCost,
		TokenSignKey:     "e2e-secret",
		TokenIssuer:      "go-movies-api",
		TokenDuration:    time.Hour,
		Version:          "1.0.0",
	}, logger.Nop())
	require.NoError(t, err)

	router := handler.NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop()).Init()
	return newTestAdapter(t, router)
}

func TestEndToEnd_AccountAndFavorites(t *testing.T) {
	ctx := context.Background()
	a := newEndToEndAdapter(t)

	user, err := a.Register(ctx, models.RegisterRequest{UserName: "alice1", Password: "Secret123!", Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice1", user.UserName)
	assert.Empty(t, user.FavoriteMovies)

	_, err = a.Register(ctx, models.RegisterRequest{UserName: "alice1", Password: "Secret123!", Email: "a@b.com"})
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = a.AddFavoriteMovie(ctx, "alice1", "movie42")
	assert.ErrorIs(t, err, ErrUnauthorized)

	loginResp, err := a.Login(ctx, models.Credentials{UserName: "alice1", Password: "Secret123!"})
	require.NoError(t, err)
	assert.Equal(t, "alice1", loginResp.User.UserName)
	assert.NotEmpty(t, a.Token())
	assert.Equal(t, loginResp.Token, a.Token())

	user, err = a.AddFavoriteMovie(ctx, "alice1", "movie42")
	require.NoError(t, err)
	assert.Equal(t, []string{"movie42"}, user.FavoriteMovies)

	user, err = a.RemoveFavoriteMovie(ctx, "alice1", "movie42")
	require.NoError(t, err)
	assert.Empty(t, user.FavoriteMovies)

	_, err = a.GetUser(ctx, "bob123")
	assert.ErrorIs(t, err, ErrForbidden)

	msg, err := a.DeleteUser(ctx, "alice1")
	require.NoError(t, err)
	assert.Equal(t, "alice1 was deleted.", msg)
}

func TestEndToEnd_WrongPassword(t *testing.T) {
	ctx := context.Background()
	a := newEndToEndAdapter(t)

	_, err := a.Register(ctx, models.RegisterRequest{UserName: "alice1", Password: "Secret123!", Email: "a@b.com"})
	require.NoError(t, err)

	_, err = a.Login(ctx, models.Credentials{UserName: "alice1", Password: "wrong"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestEndToEnd_InvalidRegistration(t *testing.T) {
	a := newEndToEndAdapter(t)

	_, err := a.Register(context.Background(), models.RegisterRequest{UserName: "al", Password: "Secret123!", Email: "a@b.com"})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestEndToEnd_Catalog(t *testing.T) {
	ctx := context.Background()
	a := newEndToEndAdapter(t)

	_, err := a.ListMovies(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Register(ctx, models.RegisterRequest{UserName: "alice1", Password: "Secret123!", Email: "a@b.com"})
	require.NoError(t, err)
	_, err = a.Login(ctx, models.Credentials{UserName: "alice1", Password: "Secret123!"})
	require.NoError(t, err)

	movies, err := a.ListMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 1)

	movie, err := a.GetMovie(ctx, "Fargo")
	require.NoError(t, err)
	assert.Equal(t, "movie42", movie.ID)

	_, err = a.GetMovie(ctx, "Heat")
	assert.ErrorIs(t, err, ErrNotFound)

	genre, err := a.GetGenre(ctx, "Crime")
	require.NoError(t, err)
	assert.Equal(t, "Crime", genre.Name)

	director, err := a.GetDirector(ctx, "Joel Coen")
	require.NoError(t, err)
	assert.Equal(t, "Joel Coen", director.Name)

	welcome, err := a.Welcome(ctx)
	require.NoError(t, err)
	assert.Contains(t, welcome, "/movies")
}
