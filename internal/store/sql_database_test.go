// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/pinvent/internal/config"
	"github.com/MKhiriev/pinvent/internal/logger"
)

func TestNewDB_UnsupportedDriver(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{Driver: "mysql", DSN: "x"}, logger.Nop())
	require.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestWithTx_Commit(t *testing.T) {
	db, mock, _ := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db, mock, _ := newTestDB(t)
	want := errors.New("fn failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return want
	})

	require.ErrorIs(t, err, want)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db, mock, _ := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
			panic("kaboom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitError(t *testing.T) {
	db, mock, _ := newTestDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := db.WithTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		return nil
	})

	require.ErrorIs(t, err, ErrCommitingTransaction)
}

func TestIsUniqueViolation_NoClassifier(t *testing.T) {
	db := &DB{}
	assert.False(t, db.isUniqueViolation(errors.New("x")))
}
