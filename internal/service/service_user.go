// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movies-api/internal/crypto"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/models"
)

const birthDateLayout = "2006-01-02"

// userService is the storage-backed UserService. It expects input that has
// already passed validation; see userValidationService.
type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser hashes the password and stores a new user with an empty
// favorites list. Username uniqueness is enforced by storage; a duplicate
// yields ErrUsernameTaken and nothing is written.
func (u *userService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	birthDate, err := parseBirthDate(request.BirthDate)
	if err != nil {
		return models.User{}, err
	}

	digest, err := u.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		UserName:     request.UserName,
		PasswordHash: digest,
		Email:        request.Email,
		BirthDate:    birthDate,
	})
	if err != nil {
		return models.User{}, mapUserStoreError(err, "user creation ended with error")
	}

	log.Info().Str("username", created.UserName).Msg("user registered")
	return created, nil
}

func (u *userService) FindUser(ctx context.Context, username string) (models.User, error) {
	user, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		return models.User{}, mapUserStoreError(err, "user search by username failed")
	}

	return user, nil
}

// UpdateUser replaces the provided fields and returns the record as stored
// after the update. A new password is re-hashed before it reaches storage.
func (u *userService) UpdateUser(ctx context.Context, username string, request models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := models.UserUpdate{
		UserName: request.UserName,
		Email:    request.Email,
	}

	if request.BirthDate != nil {
		birthDate, err := parseBirthDate(*request.BirthDate)
		if err != nil {
			return models.User{}, err
		}
		update.BirthDate = birthDate
	}

	if request.Password != nil {
		digest, err := u.hasher.Hash(*request.Password)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		update.PasswordHash = &digest
	}

	if update.IsEmpty() {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := u.userRepository.UpdateUser(ctx, username, update)
	if err != nil {
		return models.User{}, mapUserStoreError(err, "user update ended with error")
	}

	return updated, nil
}

func (u *userService) DeleteUser(ctx context.Context, username string) error {
	if err := u.userRepository.DeleteUser(ctx, username); err != nil {
		return mapUserStoreError(err, "user deletion ended with error")
	}

	logger.FromContext(ctx).Info().Str("username", username).Msg("user deleted")
	return nil
}

// parseBirthDate turns a YYYY-MM-DD string into a date. An empty string
// means no birth date.
func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: birth date: %w", ErrInvalidDataProvided, err)
	}
	return &parsed, nil
}

// mapUserStoreError converts repository sentinels into service errors.
func mapUserStoreError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameTaken
	case errors.Is(err, store.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, store.ErrNothingToUpdate):
		return ErrInvalidDataProvided
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
