// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces_token.go -destination=../mock/token_service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-movies-api/models"
)

// TokenService issues and validates stateless bearer tokens. There is no
// revocation list: a token stays valid until it expires, and logging out is
// a client-side discard.
type TokenService interface {
	// Issue signs a token whose subject is the given identity claim.
	Issue(ctx context.Context, subject string) (models.Token, error)

	// Validate checks signature, issuer and expiry and returns the claims.
	// Every failure wraps ErrUnauthorized together with one of
	// ErrTokenMalformed, ErrTokenSignatureInvalid, ErrTokenExpired or
	// ErrTokenInvalidClaims.
	Validate(ctx context.Context, tokenString string) (models.Token, error)
}
