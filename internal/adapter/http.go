// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises cfg.HTTPAddress into a base URL and
// preloads cfg.Token when one is configured.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken stores token (whitespace-trimmed) for use in the Authorization
// header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Welcome(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return "", fmt.Errorf("welcome request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

// Register POSTs the account data to POST /users/add and returns the stored
// user.
func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&user).
		Post("/users/add")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login POSTs the credentials to POST /login. On success the bearer token
// is taken from the Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.LoginResponse, error) {
	var loginResp models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&loginResp).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return loginResp, nil
}

func (h *httpServerAdapter) GetUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodGet, "/users/{userName}", map[string]string{"userName": username}, nil, &user)
	return user, err
}

func (h *httpServerAdapter) UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodPut, "/user/{userName}", map[string]string{"userName": username}, request, &user)
	return user, err
}

func (h *httpServerAdapter) DeleteUser(ctx context.Context, username string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("userName", username).
		Delete("/users/delete/{userName}")
	if err != nil {
		return "", fmt.Errorf("delete user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return string(resp.Body()), nil
}

func (h *httpServerAdapter) AddFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodPost, "/users/{userName}/favMovies/{movieID}",
		map[string]string{"userName": username, "movieID": movieID}, nil, &user)
	return user, err
}

func (h *httpServerAdapter) RemoveFavoriteMovie(ctx context.Context, username, movieID string) (models.User, error) {
	var user models.User
	err := h.do(ctx, resty.MethodDelete, "/users/{userName}/Movies/{movieID}",
		map[string]string{"userName": username, "movieID": movieID}, nil, &user)
	return user, err
}

func (h *httpServerAdapter) ListMovies(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := h.do(ctx, resty.MethodGet, "/movies", nil, nil, &movies)
	return movies, err
}

func (h *httpServerAdapter) GetMovie(ctx context.Context, title string) (models.Movie, error) {
	var movie models.Movie
	err := h.do(ctx, resty.MethodGet, "/movies/{title}", map[string]string{"title": title}, nil, &movie)
	return movie, err
}

func (h *httpServerAdapter) GetGenre(ctx context.Context, name string) (models.Genre, error) {
	var genre models.Genre
	err := h.do(ctx, resty.MethodGet, "/genre/{name}", map[string]string{"name": name}, nil, &genre)
	return genre, err
}

func (h *httpServerAdapter) GetDirector(ctx context.Context, name string) (models.Director, error) {
	var director models.Director
	err := h.do(ctx, resty.MethodGet, "/directors/{name}", map[string]string{"name": name}, nil, &director)
	return director, err
}

// do sends an authenticated JSON request and decodes a 2xx body into result.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, pathParams map[string]string, body, result any) error {
	req := h.authedRequest(ctx).SetPathParams(pathParams).SetResult(result)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
