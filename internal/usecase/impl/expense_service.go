// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ledger/internal/delivery/context"
	"ledger/internal/domain/entity"
	domainerrors "ledger/internal/domain/errors"
	"ledger/internal/domain/repository"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// expenseService implements the ExpenseUsecase interface.
type expenseService struct {
	txManager   repository.TransactionManager
	expenseRepo repository.ExpenseRepository
	logger      *slog.Logger
}

// ExpenseServiceParams holds dependencies for ExpenseService, injected by Fx.
type ExpenseServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ExpenseRepo repository.ExpenseRepository
	Logger      *slog.Logger
}

// NewExpenseService is the constructor for expenseService.
func NewExpenseService(params ExpenseServiceParams) usecase.ExpenseUsecase {
	return &expenseService{
		txManager:   params.TxManager,
		expenseRepo: params.ExpenseRepo,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *expenseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddExpense records a new expense owned by the caller.
func (srv *expenseService) AddExpense(ctx context.Context, input *usecase.AddExpenseInput) (*usecase.AddExpenseOutput, error) {
	srv.log(ctx).Debug("Adding expense", slog.Any("ownerID", input.OwnerID), slog.String("category", input.Category))

	if input.Amount < 0 {
		return nil, errors.Wrap(domainerrors.ErrInvalidInput.WrapMessage("amount must be non-negative"), "invalid expense amount")
	}

	newExpense := &entity.Expense{
		OwnerID:     input.OwnerID,
		Amount:      input.Amount,
		Category:    input.Category,
		Date:        input.Date,
		Description: input.Description,
	}

	// Single insert - use direct repository instance
	if err := srv.expenseRepo.Create(ctx, newExpense); err != nil {
		srv.log(ctx).Error("Failed to create expense", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create expense")
	}

	srv.log(ctx).Debug("Expense added", slog.Any("expenseID", newExpense.ID))

	return &usecase.AddExpenseOutput{Expense: newExpense}, nil
}

// ListExpenses retrieves every expense owned by the caller. A user with no
// expenses gets an empty list, never another user's data.
func (srv *expenseService) ListExpenses(ctx context.Context, ownerID uuid.UUID) (*usecase.ListExpensesOutput, error) {
	srv.log(ctx).Debug("Listing expenses", slog.Any("ownerID", ownerID))

	// Single query operation - use direct repository instance
	expenses, err := srv.expenseRepo.FindByOwnerID(ctx, ownerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list expenses", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list expenses")
	}

	return &usecase.ListExpensesOutput{Expenses: expenses}, nil
}

// DeleteExpense removes an expense after verifying the caller owns it.
// A well-formed ID belonging to another user is rejected with an ownership
// violation rather than silently ignored.
func (srv *expenseService) DeleteExpense(ctx context.Context, input *usecase.DeleteExpenseInput) error {
	srv.log(ctx).Debug("Deleting expense", slog.Any("ownerID", input.OwnerID), slog.Any("expenseID", input.ExpenseID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		expenseRepo := repoFactory.ExpenseRepo()

		// Verify the expense exists and belongs to the caller before deleting.
		expense, err := expenseRepo.FindByID(ctx, input.ExpenseID)
		if err != nil {
			if errors.Is(err, repository.ErrExpenseNotFound) {
				return errors.Wrap(domainerrors.ErrExpenseNotFound, "expense not found")
			}

			return errors.Wrap(err, "failed to find expense")
		}

		if expense.OwnerID != input.OwnerID {
			return errors.Wrap(domainerrors.ErrExpenseOwnershipViolation, "expense does not belong to caller")
		}

		if err := expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
			return errors.Wrap(err, "failed to delete expense")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete expense", slog.Any("ownerID", input.OwnerID), slog.Any("expenseID", input.ExpenseID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute expense deletion transaction")
	}
	srv.log(ctx).Debug("Expense deleted", slog.Any("expenseID", input.ExpenseID))

	return nil
}
