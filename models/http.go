// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the body of POST /login.
type Credentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users/add.
// BirthDate is expected in YYYY-MM-DD form.
type RegisterRequest struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate,omitempty"`
}

// UpdateUserRequest is the body of PUT /user/{userName}.
// Only non-nil fields are validated and updated.
type UpdateUserRequest struct {
	UserName  *string `json:"userName,omitempty"`
	Password  *string `json:"password,omitempty"`
	Email     *string `json:"email,omitempty"`
	BirthDate *string `json:"birthDate,omitempty"`
}

// FavoriteMovieRequest identifies a single favorites mutation.
type FavoriteMovieRequest struct {
	UserName string
	MovieID  string
}
