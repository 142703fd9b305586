// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-movies-api/models"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is the sentinel every *ValidationError unwraps to.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError lists every rule the input violated.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (e *ValidationError) add(param, msg string, value any) {
	e.Errors = append(e.Errors, models.FieldError{Param: param, Msg: msg, Value: value})
}

// orNil returns e as an error only when at least one rule failed.
func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}
