// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account of the movie catalog.
// The password digest is never exposed via JSON.
type User struct {
	// UserID is the storage identifier of the user.
	UserID int64 `json:"id"`

	// UserName is the unique login name. At least 5 characters,
	// alphanumeric only.
	UserName string `json:"userName"`

	// PasswordHash holds the salted bcrypt digest of the password.
	// This value MUST be a derived value, never plaintext.
	PasswordHash string `json:"-"`

	// Email is the contact address of the user.
	Email string `json:"email"`

	// BirthDate is optional.
	BirthDate *time.Time `json:"birthDate,omitempty"`

	// FavoriteMovies is the ordered list of movie identifiers the user
	// marked as favorite. The same identifier may appear more than once.
	FavoriteMovies []string `json:"favoriteMovies"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user record as it reaches the
// storage layer. Nil fields are left untouched.
type UserUpdate struct {
	UserName     *string
	PasswordHash *string
	Email        *string
	BirthDate    *time.Time
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.UserName == nil && u.PasswordHash == nil && u.Email == nil && u.BirthDate == nil
}
