// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// expenseRepository implements the domain.ExpenseRepository interface using GORM.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository is the constructor for expenseRepository.
func NewExpenseRepository(db *gorm.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

// Create persists a new expense row owned by exactly one user.
func (repo *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseM := fromExpenseDomain(expense)

	if err := repo.db.WithContext(ctx).Create(expenseM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("expense owner does not exist")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("expense amount must be non-negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrInvalidInput.WrapMessage("missing required expense information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create expense")
	}

	// Update the expense entity with the generated ID and timestamps
	expense.ID = expenseM.ID
	expense.CreatedAt = expenseM.CreatedAt

	return nil
}

// FindByID retrieves a single expense by its unique ID.
func (repo *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseM model.ExpenseModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&expenseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrExpenseNotFound
		}

		return nil, errors.Wrap(err, "failed to find expense by id")
	}

	return toExpenseDomain(&expenseM), nil
}

// FindByOwnerID retrieves all expenses owned by the given user, ordered by
// date then creation time for stable output. No expenses is an empty slice.
func (repo *expenseRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("date, created_at").
		Find(&expenseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expenses by owner")
	}

	expenses := make([]*entity.Expense, 0, len(expenseModels))
	for i := range expenseModels {
		expenses = append(expenses, toExpenseDomain(&expenseModels[i]))
	}

	return expenses, nil
}

// Delete removes an expense by its ID. Deleting a missing row maps to
// repository.ErrExpenseNotFound so the caller can surface a 404.
func (repo *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expense")
	}
	if result.RowsAffected == 0 {
		return repository.ErrExpenseNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toExpenseDomain(data *model.ExpenseModel) *entity.Expense {
	if data == nil {
		return nil
	}

	return &entity.Expense{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Amount:      data.Amount,
		Category:    data.Category,
		Date:        data.Date,
		Description: data.Description,
		CreatedAt:   data.CreatedAt,
	}
}

func fromExpenseDomain(data *entity.Expense) *model.ExpenseModel {
	if data == nil {
		return nil
	}

	return &model.ExpenseModel{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Amount:      data.Amount,
		Category:    data.Category,
		Date:        data.Date,
		Description: data.Description,
	}
}
