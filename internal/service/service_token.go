// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movies-api/internal/config"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/utils"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService signs HS256 JWTs with a server-held secret.
type tokenService struct {
	signKey  string
	issuer   string
	duration time.Duration

	// now is the clock used for iat/exp and for expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// TokenServiceOption customizes a TokenService built by NewTokenService.
type TokenServiceOption func(*tokenService)

// WithClock replaces the wall clock used to issue and validate tokens.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(t *tokenService) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTokenService builds a TokenService from the token settings in cfg.
func NewTokenService(cfg config.App, logger *logger.Logger, opts ...TokenServiceOption) TokenService {
	t := &tokenService{
		signKey:  cfg.TokenSignKey,
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		now:      time.Now,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *tokenService) Issue(ctx context.Context, subject string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(t.issuer, subject, t.now(), t.duration, t.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (t *tokenService) Validate(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, t.signKey, t.issuer, t.now)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, classifyTokenError(err))
	}

	return token, nil
}

// classifyTokenError maps jwt/v5 validation errors onto the token error kinds.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrTokenSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	default:
		return ErrTokenInvalidClaims
	}
}
