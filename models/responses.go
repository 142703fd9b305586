// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is returned by POST /login.
type LoginResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Param string `json:"param"`
	Msg   string `json:"msg"`
	Value any    `json:"value,omitempty"`
}

// ValidationErrorResponse is the body of every 422 response.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
