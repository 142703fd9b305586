// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrValidation          = errors.New("validation failed")
	ErrInternalServerError = errors.New("internal server error")

	ErrEmptyAddress = errors.New("empty address")
)

// ValidationError carries the field errors of a 422 response.
type ValidationError struct {
	Errors []FieldError
}

// FieldError mirrors one entry of the server's validation response.
type FieldError struct {
	Param string
	Msg   string
}

func (e *ValidationError) Error() string {
	msg := ErrValidation.Error()
	for _, fe := range e.Errors {
		msg += "; " + fe.Param + ": " + fe.Msg
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
