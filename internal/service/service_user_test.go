// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-movies-api/internal/crypto"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/MKhiriev/go-movies-api/internal/mock"
	"github.com/MKhiriev/go-movies-api/internal/store"
	"github.com/MKhiriev/go-movies-api/internal/validators"
	"github.com/MKhiriev/go-movies-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func newTestUserService(t *testing.T) (UserService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	return NewUserService(repo, hasher, logger.Nop()), repo, hasher
}

func TestUserService_RegisterUser_HashesPasswordAndStartsWithEmptyFavorites(t *testing.T) {
	svc, repo, hasher := newTestUserService(t)
	birth := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)

	hasher.EXPECT().Hash("Secret123!").Return("digest", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice1", u.UserName)
			assert.Equal(t, "digest", u.PasswordHash)
			assert.Equal(t, "a@b.com", u.Email)
			require.NotNil(t, u.BirthDate)
			assert.True(t, birth.Equal(*u.BirthDate))
			u.UserID = 1
			u.FavoriteMovies = []string{}
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		UserName:  "alice1",
		Password:  "Secret123!",
		Email:     "a@b.com",
		BirthDate: "1990-05-17",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.FavoriteMovies)
}

func TestUserService_RegisterUser_WithoutBirthDate(t *testing.T) {
	svc, repo, hasher := newTestUserService(t)

	hasher.EXPECT().Hash("pw").Return("digest", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Nil(t, u.BirthDate)
			return u, nil
		})

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{UserName: "alice1", Password: "pw", Email: "a@b.com"})

	require.NoError(t, err)
}

func TestUserService_RegisterUser_DuplicateUsername(t *testing.T) {
	svc, repo, hasher := newTestUserService(t)

	hasher.EXPECT().Hash("pw").Return("digest", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{UserName: "alice1", Password: "pw", Email: "a@b.com"})

	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_RegisterUser_BadBirthDateNeverReachesStorage(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{UserName: "alice1", Password: "pw", Email: "a@b.com", BirthDate: "17/05/1990"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_RegisterThenFind_DigestVerifiesPlaintext(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewUserService(repo, hasher, logger.Nop())

	var stored models.User
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			u.FavoriteMovies = []string{}
			stored = u
			return u, nil
		})
	repo.EXPECT().FindUserByUsername(gomock.Any(), "alice1").
		DoAndReturn(func(context.Context, string) (models.User, error) { return stored, nil })

	_, err = svc.RegisterUser(context.Background(), models.RegisterRequest{UserName: "alice1", Password: "Secret123!", Email: "a@b.com"})
	require.NoError(t, err)

	found, err := svc.FindUser(context.Background(), "alice1")
	require.NoError(t, err)

	assert.NotEqual(t, "Secret123!", found.PasswordHash)
	assert.True(t, hasher.Verify("Secret123!", found.PasswordHash))
	assert.Empty(t, found.FavoriteMovies)
}

func TestUserService_FindUser_NotFound(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.FindUser(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateUser_RehashesPassword(t *testing.T) {
	svc, repo, hasher := newTestUserService(t)

	hasher.EXPECT().Hash("NewSecret1").Return("new-digest", nil)
	repo.EXPECT().UpdateUser(gomock.Any(), "alice1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd models.UserUpdate) (models.User, error) {
			require.NotNil(t, upd.PasswordHash)
			assert.Equal(t, "new-digest", *upd.PasswordHash)
			assert.Nil(t, upd.UserName)
			assert.Equal(t, "new@b.com", *upd.Email)
			return models.User{UserName: "alice1", Email: "new@b.com"}, nil
		})

	user, err := svc.UpdateUser(context.Background(), "alice1", models.UpdateUserRequest{
		Password: strPtr("NewSecret1"),
		Email:    strPtr("new@b.com"),
	})

	require.NoError(t, err)
	assert.Equal(t, "new@b.com", user.Email)
}

func TestUserService_UpdateUser_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "missing user", repoErr: store.ErrUserNotFound, want: ErrUserNotFound},
		{name: "username taken", repoErr: store.ErrUsernameAlreadyExists, want: ErrUsernameTaken},
		{name: "nothing to update", repoErr: store.ErrNothingToUpdate, want: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newTestUserService(t)
			repo.EXPECT().UpdateUser(gomock.Any(), "alice1", gomock.Any()).Return(models.User{}, tt.repoErr)

			_, err := svc.UpdateUser(context.Background(), "alice1", models.UpdateUserRequest{UserName: strPtr("alice2")})

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_UpdateUser_EmptyUpdate(t *testing.T) {
	svc, _, _ := newTestUserService(t)

	_, err := svc.UpdateUser(context.Background(), "alice1", models.UpdateUserRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, repo, _ := newTestUserService(t)

	repo.EXPECT().DeleteUser(gomock.Any(), "alice1").Return(nil)
	repo.EXPECT().DeleteUser(gomock.Any(), "ghost").Return(store.ErrUserNotFound)

	require.NoError(t, svc.DeleteUser(context.Background(), "alice1"))
	assert.ErrorIs(t, svc.DeleteUser(context.Background(), "ghost"), ErrUserNotFound)
}

func TestUserService_UnexpectedStorageErrorIsWrapped(t *testing.T) {
	svc, repo, _ := newTestUserService(t)
	dbErr := errors.New("connection refused")

	repo.EXPECT().DeleteUser(gomock.Any(), "alice1").Return(dbErr)

	err := svc.DeleteUser(context.Background(), "alice1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUserValidationService_InvalidRegisterNeverReachesInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewUserValidationService().Wrap(NewUserService(repo, hasher, logger.Nop()))

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{UserName: "al!", Password: "", Email: "nope"})

	var verr *validators.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestUserValidationService_ValidUpdatePassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	svc := NewUserValidationService().Wrap(NewUserService(repo, hasher, logger.Nop()))

	repo.EXPECT().UpdateUser(gomock.Any(), "alice1", gomock.Any()).Return(models.User{UserName: "alice2"}, nil)

	user, err := svc.UpdateUser(context.Background(), "alice1", models.UpdateUserRequest{UserName: strPtr("alice2")})

	require.NoError(t, err)
	assert.Equal(t, "alice2", user.UserName)
}

func TestUserValidationService_EmptyUpdateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewUserValidationService().Wrap(NewUserService(mock.NewMockUserRepository(ctrl), mock.NewMockPasswordHasher(ctrl), logger.Nop()))

	_, err := svc.UpdateUser(context.Background(), "alice1", models.UpdateUserRequest{})

	assert.ErrorIs(t, err, validators.ErrInvalidInput)
}
