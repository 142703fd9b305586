// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the
// application: typed context keys, JSON response writing, the HTTP client
// wrapper and JWT token generation and validation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key under which the authenticated username is stored
// in the request context by the auth middleware.
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// GetUsernameFromContext retrieves the authenticated username from the
// context. ok is false when the value is missing, empty or has an unexpected
// type.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}
