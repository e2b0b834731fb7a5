package postgres

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refreshTokenColumns() []string {
	return []string{"id", "user_id", "token_hash", "expires_at", "created_at"}
}

func TestRefreshTokenRepository_FindRefreshTokenByHash(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(gormDB)

	tokenID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("token_hash", 1).
		WillReturnRows(sqlmock.NewRows(refreshTokenColumns()).
			AddRow(tokenID, userID, "token_hash", time.Now().Add(time.Hour), time.Now()))

	token, err := repo.FindRefreshTokenByHash(context.Background(), "token_hash")

	require.NoError(t, err)
	assert.Equal(t, tokenID, token.ID)
	assert.Equal(t, userID, token.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindRefreshTokenByHash_Expired(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(gormDB)

	// A persisted but expired session reads as not found.
	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("token_hash", 1).
		WillReturnRows(sqlmock.NewRows(refreshTokenColumns()).
			AddRow(uuid.New(), uuid.New(), "token_hash", time.Now().Add(-time.Hour), time.Now()))

	token, err := repo.FindRefreshTokenByHash(context.Background(), "token_hash")

	require.Error(t, err)
	assert.Nil(t, token)
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_FindRefreshTokenByHash_Missing(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("unknown_hash", 1).
		WillReturnRows(sqlmock.NewRows(refreshTokenColumns()))

	token, err := repo.FindRefreshTokenByHash(context.Background(), "unknown_hash")

	require.Error(t, err)
	assert.Nil(t, token)
	assert.True(t, errors.Is(err, repository.ErrRefreshTokenNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteRefreshTokenByHash(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(gormDB)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE token_hash = \$1`).
		WithArgs("token_hash").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRefreshTokenByHash(context.Background(), "token_hash")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshTokenRepository_DeleteExpiredRefreshTokens(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(gormDB)

	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE expires_at < \$1`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 3))

	deleted, err := repo.DeleteExpiredRefreshTokens(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
