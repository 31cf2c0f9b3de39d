// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/MKhiriev/go-microblog/internal/config"
	"github.com/MKhiriev/go-microblog/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "app.sqlite?_foreign_keys=on&_busy_timeout=5000", sqliteDSN("app.sqlite"))
	assert.Equal(t, "file:app.sqlite?cache=shared&_foreign_keys=on&_busy_timeout=5000", sqliteDSN("file:app.sqlite?cache=shared"))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("app.sqlite"))
	assert.False(t, isPostgresDSN("/var/lib/postgres/app.sqlite"))
}

func TestNewDB_EmptyDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{}, logger.Nop())

	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	wantErr := errors.New("stop")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error { return wantErr })

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = db.WithTx(context.Background(), func(tx *sql.Tx) error { panic("boom") })
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newMockDB(t)

	calls := 0
	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err := db.WithTx(context.Background(), func(tx *sql.Tx) error {
		calls++
		return pgError("40001")
	})

	require.Error(t, err)
	assert.Equal(t, maxTxAttempts, calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}
