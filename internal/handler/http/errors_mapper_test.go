// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: fmt.Errorf("wrapped: %w", &validators.ValidationError{}), want: http.StatusUnprocessableEntity},
		{name: "invalid data", err: service.ErrInvalidDataProvided, want: http.StatusBadRequest},
		{name: "username taken", err: service.ErrUsernameTaken, want: http.StatusBadRequest},
		{name: "wrong credentials", err: service.ErrWrongCredentials, want: http.StatusUnauthorized},
		{name: "expired token", err: fmt.Errorf("%w: %w", service.ErrUnauthorized, service.ErrTokenExpired), want: http.StatusUnauthorized},
		{name: "forbidden", err: ErrForbidden, want: http.StatusForbidden},
		{name: "user not found", err: service.ErrUserNotFound, want: http.StatusNotFound},
		{name: "movie not found", err: service.ErrMovieNotFound, want: http.StatusNotFound},
		{name: "sql failure", err: fmt.Errorf("x: %w", store.ErrExecutingQuery), want: http.StatusInternalServerError},
		{name: "unknown", err: errors.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestPublicMessage_TokenErrorsCollapseToUnauthorized(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrUnauthorized, service.ErrTokenSignatureInvalid)

	assert.Equal(t, service.ErrUnauthorized.Error(), publicMessage(err))
}

func TestErrorMapping_FirstListedSentinelWins(t *testing.T) {
	err := fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, service.ErrUserNotFound)

	for i := 0; i < 50; i++ {
		assert.Equal(t, http.StatusNotFound, statusFromError(err))
		assert.Equal(t, service.ErrUserNotFound.Error(), publicMessage(err))
	}
}
