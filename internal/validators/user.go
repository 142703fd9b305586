// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-movies-api/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of fields.
// They match the JSON names of the request bodies and path parameters.
const (
	FieldUserName  = "userName"
	FieldPassword  = "password"
	FieldEmail     = "email"
	FieldBirthDate = "birthDate"
	FieldMovieID   = "favoriteMovies"
)

// Messages reported to API clients.
const (
	MsgUserNameRequired     = "Username is required"
	MsgUserNameAlphanumeric = "Username contains non alphanumeric characters - not allowed."
	MsgPasswordRequired     = "Password is required"
	MsgPasswordTooLong      = "Password must not be longer than 72 bytes"
	MsgEmailInvalid         = "Email does not appear to be valid"
	MsgBirthDateInvalid     = "Birth date must be a date in YYYY-MM-DD format"
	MsgBirthDateEmpty       = "Birth date must not be empty when provided"
	MsgMovieIDRequired      = "Movie id is required"
	MsgNothingToUpdate      = "At least one field must be provided for update"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

// tagMaxBytes limits a string by its byte length; the builtin max counts runes.
const tagMaxBytes = "maxbytes"

// rule binds a validator/v10 tag to the message reported when it fails.
type rule struct {
	tag string
	msg string
}

var fieldRules = map[string][]rule{
	FieldUserName: {
		{tag: "min=5", msg: MsgUserNameRequired},
		{tag: "alphanum", msg: MsgUserNameAlphanumeric},
	},
	FieldPassword: {
		{tag: "required", msg: MsgPasswordRequired},
		{tag: tagMaxBytes + "=" + strconv.Itoa(maxPasswordBytes), msg: MsgPasswordTooLong},
	},
	FieldEmail: {
		{tag: "required,email", msg: MsgEmailInvalid},
	},
	FieldBirthDate: {
		{tag: "omitempty,datetime=2006-01-02", msg: MsgBirthDateInvalid},
	},
	FieldMovieID: {
		{tag: "required", msg: MsgMovieIDRequired},
	},
}

// UserValidator validates account and favorites requests.
type UserValidator struct {
	validate *validator.Validate
}

func NewUserValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// registration only fails for an empty tag or a nil function
	_ = validate.RegisterValidation(tagMaxBytes, maxBytes)

	return &UserValidator{validate: validate}
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, value, fields...)
	case *models.UpdateUserRequest:
		return v.validateUpdateUserRequest(ctx, *value, fields...)

	case models.FavoriteMovieRequest:
		return v.validateFavoriteMovieRequest(ctx, value, fields...)
	case *models.FavoriteMovieRequest:
		return v.validateFavoriteMovieRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(ctx context.Context, request models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword, FieldEmail, FieldBirthDate}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserName:
			v.check(verr, f, request.UserName, request.UserName)
		case FieldPassword:
			v.check(verr, f, request.Password, nil)
		case FieldEmail:
			v.check(verr, f, request.Email, request.Email)
		case FieldBirthDate:
			v.check(verr, f, request.BirthDate, request.BirthDate)
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// validateUpdateUserRequest checks only the fields present in the request.
// An update without any field is rejected.
func (v *UserValidator) validateUpdateUserRequest(ctx context.Context, request models.UpdateUserRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserName, FieldPassword, FieldEmail, FieldBirthDate}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserName:
			if request.UserName != nil {
				v.check(verr, f, *request.UserName, *request.UserName)
			}
		case FieldPassword:
			if request.Password != nil {
				v.check(verr, f, *request.Password, nil)
			}
		case FieldEmail:
			if request.Email != nil {
				v.check(verr, f, *request.Email, *request.Email)
			}
		case FieldBirthDate:
			if request.BirthDate == nil {
				continue
			}
			if *request.BirthDate == "" {
				verr.add(f, MsgBirthDateEmpty, *request.BirthDate)
				continue
			}
			v.check(verr, f, *request.BirthDate, *request.BirthDate)
		default:
			return ErrUnknownField
		}
	}

	if request.UserName == nil && request.Password == nil && request.Email == nil && request.BirthDate == nil {
		verr.add("body", MsgNothingToUpdate, nil)
	}

	return verr.orNil()
}

func (v *UserValidator) validateFavoriteMovieRequest(ctx context.Context, request models.FavoriteMovieRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMovieID}
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldUserName:
			v.check(verr, f, request.UserName, request.UserName)
		case FieldMovieID:
			v.check(verr, f, request.MovieID, request.MovieID)
		default:
			return ErrUnknownField
		}
	}

	return verr.orNil()
}

// check runs every rule of field against value and records a failure per
// violated rule. reported is echoed back to the client; nil hides it.
func (v *UserValidator) check(verr *ValidationError, field string, value string, reported any) {
	for _, r := range fieldRules[field] {
		if err := v.validate.Var(value, r.tag); err != nil {
			verr.add(field, r.msg, reported)
		}
	}
}
