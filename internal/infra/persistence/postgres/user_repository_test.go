package postgres

import (
	"context"
	"testing"
	"time"

	"ledger/internal/domain/entity"
	"ledger/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindByUsername(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	userID := uuid.New()
	createdAt := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(userID, "alice", "hashed_password", createdAt))

	user, err := repo.FindByUsername(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindByUsername_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}))

	user, err := repo.FindByUsername(context.Background(), "missing")

	require.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrUserNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	generatedID := uuid.New()

	// The database generates the primary key, returned via RETURNING.
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID))

	user := &entity.User{
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	err := repo.Create(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, generatedID, user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewUserRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`))

	user := &entity.User{
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	err := repo.Create(context.Background(), user)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrUsernameTaken))
	assert.NoError(t, mock.ExpectationsWereMet())
}
