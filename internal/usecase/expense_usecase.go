// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"ledger/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddExpenseInput defines the data required to record a new expense.
// OwnerID always comes from the verified access token, never from the request body.
type AddExpenseInput struct {
	OwnerID     uuid.UUID
	Amount      float64
	Category    string
	Date        time.Time
	Description string
}

// DeleteExpenseInput identifies the expense to delete and the caller requesting it.
type DeleteExpenseInput struct {
	OwnerID   uuid.UUID
	ExpenseID uuid.UUID
}

// --- Output DTOs ---

// AddExpenseOutput returns the stored expense, including its generated ID.
type AddExpenseOutput struct {
	Expense *entity.Expense
}

// ListExpensesOutput returns every expense owned by the caller.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ExpenseUsecase defines the interface for expense-related business operations.
type ExpenseUsecase interface {
	AddExpense(ctx context.Context, input *AddExpenseInput) (*AddExpenseOutput, error)
	ListExpenses(ctx context.Context, ownerID uuid.UUID) (*ListExpensesOutput, error)
	DeleteExpense(ctx context.Context, input *DeleteExpenseInput) error
}
