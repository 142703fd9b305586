// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movies-api/internal/crypto"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the stored bcrypt digest and delegates
// token work to a TokenService.
type authService struct {
	// userRepository is used to look up users by username.
	userRepository store.UserRepository

	// hasher verifies plaintext passwords against stored digests.
	hasher crypto.PasswordHasher

	// tokens issues and validates bearer tokens.
	tokens TokenService

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if UserName or Password is empty.
//   - ErrWrongCredentials if the user does not exist or the password does
//     not match. Both cases are indistinguishable to the caller.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.UserName == "" || creds.Password == "" {
		log.Error().Str("username", creds.UserName).Msg("invalid credentials provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.UserName)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Warn().Str("username", creds.UserName).Msg("login for unknown user")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("username", creds.UserName).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.PasswordHash) {
		log.Warn().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.UserName).
			Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return a.tokens.Issue(ctx, user.UserName)
}

// ParseToken validates and parses a raw JWT string.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return a.tokens.Validate(ctx, tokenString)
}
