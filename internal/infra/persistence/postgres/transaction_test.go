package postgres

import (
	"context"
	"testing"

	"ledger/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute_Commit(t *testing.T) {
	gormDB, mock := newTestDB(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectCommit()

	var gotFactory repository.RepositoryFactory
	err := tm.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		gotFactory = repoFactory

		return nil
	})

	require.NoError(t, err)
	assert.NotNil(t, gotFactory)
	assert.NotNil(t, gotFactory.UserRepo())
	assert.NotNil(t, gotFactory.ExpenseRepo())
	assert.NotNil(t, gotFactory.RefreshTokenRepo())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute_RollbackOnError(t *testing.T) {
	gormDB, mock := newTestDB(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	businessErr := errors.New("business rule rejected")
	err := tm.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
		return businessErr
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, businessErr))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_Execute_RollbackOnPanic(t *testing.T) {
	gormDB, mock := newTestDB(t)
	tm := NewTransactionManager(gormDB)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = tm.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
			panic("boom")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}
