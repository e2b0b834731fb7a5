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

func TestExpenseRepository_Create(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	generatedID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "expenses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(generatedID))

	date, err := time.Parse(entity.DateLayout, "2025-06-15")
	require.NoError(t, err)

	expense := &entity.Expense{
		OwnerID:     uuid.New(),
		Amount:      42.50,
		Category:    "groceries",
		Date:        date,
		Description: "weekly shop",
	}

	err = repo.Create(context.Background(), expense)

	require.NoError(t, err)
	assert.Equal(t, generatedID, expense.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Create_CheckViolation(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	mock.ExpectQuery(`INSERT INTO "expenses"`).
		WillReturnError(errors.New(`ERROR: new row for relation "expenses" violates check constraint "chk_expenses_amount" (SQLSTATE 23514)`))

	expense := &entity.Expense{
		OwnerID:  uuid.New(),
		Amount:   -5,
		Category: "misc",
		Date:     time.Now(),
	}

	err := repo.Create(context.Background(), expense)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-negative")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_FindByOwnerID(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	ownerID := uuid.New()
	firstDate, _ := time.Parse(entity.DateLayout, "2025-06-01")
	secondDate, _ := time.Parse(entity.DateLayout, "2025-06-02")

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE owner_id = \$1 ORDER BY date, created_at`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "amount", "category", "date", "description", "created_at"}).
			AddRow(uuid.New(), ownerID, 10.00, "transport", firstDate, "", time.Now()).
			AddRow(uuid.New(), ownerID, 25.40, "groceries", secondDate, "weekly shop", time.Now()))

	expenses, err := repo.FindByOwnerID(context.Background(), ownerID)

	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "transport", expenses[0].Category)
	assert.Equal(t, "groceries", expenses[1].Category)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_FindByOwnerID_Empty(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE owner_id = \$1 ORDER BY date, created_at`).
		WithArgs(ownerID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "amount", "category", "date", "description", "created_at"}))

	expenses, err := repo.FindByOwnerID(context.Background(), ownerID)

	require.NoError(t, err)
	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_FindByID_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	expenseID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "expenses" WHERE id = \$1`).
		WithArgs(expenseID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "owner_id", "amount", "category", "date", "description", "created_at"}))

	expense, err := repo.FindByID(context.Background(), expenseID)

	require.Error(t, err)
	assert.Nil(t, expense)
	assert.True(t, errors.Is(err, repository.ErrExpenseNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Delete(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	expenseID := uuid.New()

	mock.ExpectExec(`DELETE FROM "expenses" WHERE id = \$1`).
		WithArgs(expenseID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), expenseID)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseRepository_Delete_Missing(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewExpenseRepository(gormDB)

	expenseID := uuid.New()

	// Deleting an already-gone row affects nothing and maps to not found.
	mock.ExpectExec(`DELETE FROM "expenses" WHERE id = \$1`).
		WithArgs(expenseID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), expenseID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repository.ErrExpenseNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
