// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-movies-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorages_WiresRepositories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectClose()

	s := newStorages(&DB{DB: db, logger: logger.Nop()}, logger.Nop())

	assert.NotNil(t, s.UserRepository)
	assert.NotNil(t, s.MovieRepository)
	assert.NoError(t, s.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
	assert.NoError(t, (&Storages{}).Close())
}
