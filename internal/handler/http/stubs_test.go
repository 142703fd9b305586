// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/models"
)

// Function-field stubs of the service interfaces. A nil field returns zero
// values.

type stubAuthService struct {
	loginFn       func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (s *stubAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, creds)
	}
	return models.User{}, nil
}

func (s *stubAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if s.createTokenFn != nil {
		return s.createTokenFn(ctx, user)
	}
	return models.Token{}, nil
}

func (s *stubAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if s.parseTokenFn != nil {
		return s.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, service.ErrUnauthorized
}

type stubUserService struct {
	registerFn func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	findFn     func(ctx context.Context, username string) (models.User, error)
	updateFn   func(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error)
	deleteFn   func(ctx context.Context, username string) error
}

func (s *stubUserService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if s.registerFn != nil {
		return s.registerFn(ctx, request)
	}
	return models.User{}, nil
}

func (s *stubUserService) FindUser(ctx context.Context, username string) (models.User, error) {
	if s.findFn != nil {
		return s.findFn(ctx, username)
	}
	return models.User{}, nil
}

func (s *stubUserService) UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, username, request)
	}
	return models.User{}, nil
}

func (s *stubUserService) DeleteUser(ctx context.Context, username string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, username)
	}
	return nil
}

type stubFavoritesService struct {
	addFn    func(ctx context.Context, username, movieID string) (models.User, error)
	removeFn func(ctx context.Context, username, movieID string) (models.User, error)
}

func (s *stubFavoritesService) AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	if s.addFn != nil {
		return s.addFn(ctx, username, movieID)
	}
	return models.User{}, nil
}

func (s *stubFavoritesService) RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	if s.removeFn != nil {
		return s.removeFn(ctx, username, movieID)
	}
	return models.User{}, nil
}

type stubMovieService struct {
	listFn     func(ctx context.Context) ([]models.Movie, error)
	titleFn    func(ctx context.Context, title string) (models.Movie, error)
	genreFn    func(ctx context.Context, name string) (models.Genre, error)
	directorFn func(ctx context.Context, name string) (models.Director, error)
}

func (s *stubMovieService) ListMovies(ctx context.Context) ([]models.Movie, error) {
	if s.listFn != nil {
		return s.listFn(ctx)
	}
	return []models.Movie{}, nil
}

func (s *stubMovieService) GetMovieByTitle(ctx context.Context, title string) (models.Movie, error) {
	if s.titleFn != nil {
		return s.titleFn(ctx, title)
	}
	return models.Movie{}, nil
}

func (s *stubMovieService) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	if s.genreFn != nil {
		return s.genreFn(ctx, name)
	}
	return models.Genre{}, nil
}

func (s *stubMovieService) GetDirector(ctx context.Context, name string) (models.Director, error) {
	if s.directorFn != nil {
		return s.directorFn(ctx, name)
	}
	return models.Director{}, nil
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(context.Context) string { return s.version }

func (s *stubAppInfoService) Welcome(context.Context) string { return "Welcome to the 90s Movies API" }

// validTokenFor returns a ParseToken stub accepting only "token-<username>".
func validTokenFor(username string) func(context.Context, string) (models.Token, error) {
	return func(_ context.Context, tokenString string) (models.Token, error) {
		if tokenString != "token-"+username {
			return models.Token{}, service.ErrUnauthorized
		}
		return models.Token{UserName: username, SignedString: tokenString}, nil
	}
}

// newTestServices fills every service with a stub so routes never hit a nil
// interface.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:      &stubAuthService{},
		UserService:      &stubUserService{},
		FavoritesService: &stubFavoritesService{},
		MovieService:     &stubMovieService{},
		AppInfoService:   &stubAppInfoService{version: "test-version"},
	}
}

func newTestRouter(services *service.Services) http.Handler {
	return NewHandler(services, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop()).Init()
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}
