// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-movies-api/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a structurally valid token carries no
// "sub" claim.
var ErrEmptySubject = errors.New("empty subject in token")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for subject.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the username the token is issued for
//   - IssuedAt  (iat): now
//   - ExpiresAt (exp): now plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
//	token, err := utils.GenerateJWTToken("go-movies-api", "alice", time.Now(), time.Hour, "secret")
func GenerateJWTToken(issuer, subject string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserName:         subject,
	}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes:
//   - HS256 signature verification using tokenSignKey
//   - issuer (iss) check against tokenIssuer
//   - expiration (exp) presence and check against the clock now
//   - subject (sub) presence
//
// The returned error wraps the jwt/v5 sentinel that caused the failure
// (jwt.ErrTokenMalformed, jwt.ErrTokenSignatureInvalid, jwt.ErrTokenExpired,
// jwt.ErrTokenInvalidIssuer, ...) or [ErrEmptySubject], so callers can
// classify it with errors.Is.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	if now == nil {
		now = time.Now
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrEmptySubject
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
		UserName:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an Authorization header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
