// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential store primitives used by the
// authentication services.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCost is returned by [NewBcryptHasher] when cost is outside
// bcrypt's accepted range.
var ErrInvalidCost = errors.New("invalid bcrypt cost")

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] backed by bcrypt with the
// given work factor.
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

func (b *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), b.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

func (b *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
