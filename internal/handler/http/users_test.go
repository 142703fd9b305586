// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/internal/validators"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servicesAuthenticatedAs(username string) *service.Services {
	services := newTestServices()
	services.AuthService = &stubAuthService{parseTokenFn: validTokenFor(username)}
	return services
}

func TestGetUser(t *testing.T) {
	services := servicesAuthenticatedAs("alice1")
	services.UserService = &stubUserService{
		findFn: func(_ context.Context, username string) (models.User, error) {
			return models.User{UserName: username, FavoriteMovies: []string{"movie42"}}, nil
		},
	}

	rr := doRequest(newTestRouter(services), http.MethodGet, "/users/alice1", "", "token-alice1")

	require.Equal(t, http.StatusOK, rr.Code)
	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, []string{"movie42"}, user.FavoriteMovies)
}

func TestGetUser_NotFound(t *testing.T) {
	services := servicesAuthenticatedAs("alice1")
	services.UserService = &stubUserService{
		findFn: func(context.Context, string) (models.User, error) { return models.User{}, service.ErrUserNotFound },
	}

	rr := doRequest(newTestRouter(services), http.MethodGet, "/users/alice1", "", "token-alice1")

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateUser(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		token      string
		updateErr  error
		wantStatus int
		wantCalled bool
	}{
		{name: "success", body: `{"email":"new@b.com"}`, token: "token-alice1", wantStatus: http.StatusOK, wantCalled: true},
		{name: "no token", body: `{"email":"new@b.com"}`, wantStatus: http.StatusUnauthorized},
		{name: "invalid json", body: `{`, token: "token-alice1", wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{}`, token: "token-alice1", updateErr: &validators.ValidationError{Errors: []models.FieldError{{Param: "body", Msg: validators.MsgNothingToUpdate}}}, wantStatus: http.StatusUnprocessableEntity, wantCalled: true},
		{name: "username taken", body: `{"userName":"bobby1"}`, token: "token-alice1", updateErr: service.ErrUsernameTaken, wantStatus: http.StatusBadRequest, wantCalled: true},
		{name: "missing user", body: `{"email":"new@b.com"}`, token: "token-alice1", updateErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound, wantCalled: true},
		{name: "unexpected", body: `{"email":"new@b.com"}`, token: "token-alice1", updateErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			services := servicesAuthenticatedAs("alice1")
			services.UserService = &stubUserService{
				updateFn: func(_ context.Context, username string, request models.UpdateUserRequest) (models.User, error) {
					called = true
					assert.Equal(t, "alice1", username)
					return models.User{UserName: username, Email: "new@b.com"}, tt.updateErr
				},
			}

			rr := doRequest(newTestRouter(services), http.MethodPut, "/user/alice1", tt.body, tt.token)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantBody: "alice1 was deleted."},
		{name: "not found", deleteErr: service.ErrUserNotFound, wantStatus: http.StatusBadRequest, wantBody: "alice1 was not found."},
		{name: "unexpected", deleteErr: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantBody: "Internal Server Error\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := servicesAuthenticatedAs("alice1")
			services.UserService = &stubUserService{
				deleteFn: func(context.Context, string) error { return tt.deleteErr },
			}

			rr := doRequest(newTestRouter(services), http.MethodDelete, "/users/delete/alice1", "", "token-alice1")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func fieldErrors(t *testing.T, rr *httptest.ResponseRecorder) []models.FieldError {
	t.Helper()
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Errors
}

func TestUserValidation_RejectedBeforeService(t *testing.T) {
	tooLong := strings.Repeat("p", 73)

	tests := []struct {
		name      string
		method    string
		path      string
		body      string
		token     string
		wantParam string
		wantMsg   string
	}{
		{
			name:      "register with 73 byte password",
			method:    http.MethodPost,
			path:      "/users/add",
			body:      `{"userName":"alice1","password":"` + tooLong + `","email":"a@b.com"}`,
			wantParam: validators.FieldPassword,
			wantMsg:   validators.MsgPasswordTooLong,
		},
		{
			name:      "update with 73 byte password",
			method:    http.MethodPut,
			path:      "/user/alice1",
			body:      `{"password":"` + tooLong + `"}`,
			token:     "token-alice1",
			wantParam: validators.FieldPassword,
			wantMsg:   validators.MsgPasswordTooLong,
		},
		{
			name:      "update with empty birth date",
			method:    http.MethodPut,
			path:      "/user/alice1",
			body:      `{"birthDate":""}`,
			token:     "token-alice1",
			wantParam: validators.FieldBirthDate,
			wantMsg:   validators.MsgBirthDateEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := servicesAuthenticatedAs("alice1")
			services.UserService = service.NewUserValidationService().Wrap(&stubUserService{
				registerFn: func(context.Context, models.RegisterRequest) (models.User, error) {
					t.Fatal("register reached the service")
					return models.User{}, nil
				},
				updateFn: func(context.Context, string, models.UpdateUserRequest) (models.User, error) {
					t.Fatal("update reached the service")
					return models.User{}, nil
				},
			})

			rr := doRequest(newTestRouter(services), tt.method, tt.path, tt.body, tt.token)

			errs := fieldErrors(t, rr)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantParam, errs[0].Param)
			assert.Equal(t, tt.wantMsg, errs[0].Msg)
		})
	}
}
