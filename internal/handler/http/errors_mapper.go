// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/service"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/MKhiriev/go-movies-api/internal/validators"
	"github.com/MKhiriev/go-movies-api/models"
)

// errorStatuses is matched top to bottom; the first sentinel found in an
// error chain decides the status and the public message.
var errorStatuses = []struct {
	err    error
	status int
}{
	{err: ErrInvalidJSON, status: http.StatusBadRequest},
	{err: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{err: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{err: ErrForbidden, status: http.StatusForbidden},
	{err: validators.ErrInvalidInput, status: http.StatusUnprocessableEntity},
	{err: service.ErrUnauthorized, status: http.StatusUnauthorized},
	{err: service.ErrWrongCredentials, status: http.StatusUnauthorized},
	{err: service.ErrUsernameTaken, status: http.StatusBadRequest},
	{err: service.ErrUserNotFound, status: http.StatusNotFound},
	{err: service.ErrMovieNotFound, status: http.StatusNotFound},
	{err: service.ErrGenreNotFound, status: http.StatusNotFound},
	{err: service.ErrDirectorNotFound, status: http.StatusNotFound},
	{err: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{err: service.ErrTokenCreationFailed, status: http.StatusInternalServerError},
	{err: service.ErrVersionIsNotSpecified, status: http.StatusInternalServerError},
}

// matchError returns the first entry of errorStatuses found in err's chain.
func matchError(err error) (error, int, bool) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.err, e.status, true
		}
	}
	return nil, 0, false
}

func statusFromError(err error) int {
	if _, status, ok := matchError(err); ok {
		return status
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Validation
// failures are reported field by field as JSON; unexpected errors get a
// generic body so internals never leak to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		log.Warn().Err(err).Int("status", status).Msg("request failed validation")
		utils.WriteJSON(w, models.ValidationErrorResponse{Errors: verr.Errors}, http.StatusUnprocessableEntity)
		return
	}

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error occurred")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Send()
	http.Error(w, publicMessage(err), status)
}

// publicMessage returns the text of the first known sentinel in err's chain.
func publicMessage(err error) string {
	if target, _, ok := matchError(err); ok {
		return target.Error()
	}
	return err.Error()
}
