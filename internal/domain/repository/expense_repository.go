// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrExpenseNotFound is returned when an expense is not found.
var ErrExpenseNotFound = errors.New("expense not found")

// ExpenseRepository defines the standard operations for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense row owned by exactly one user.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves a single expense by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByOwnerID retrieves all expenses owned by the given user.
	// An owner with no expenses yields an empty slice, not an error.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Expense, error)

	// Delete removes an expense by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
