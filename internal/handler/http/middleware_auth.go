// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken] and, on success, stores
// the token subject in the request context under [utils.UsernameCtxKey]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token is malformed, expired, badly signed or carries invalid claims.
//
// Rejected requests never reach next.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user", token.UserName)
		})
		ctx = l.WithContext(ctx)
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.UserName)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ownerOnly lets a request through only when the authenticated username
// equals the {userName} path parameter. It must run after auth.
func (h *Handler) ownerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		if owner := chi.URLParam(r, "userName"); owner != username {
			logger.FromRequest(r).Warn().Str("owner", owner).Msg("attempt to access another user's data")
			writeError(w, r, ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
