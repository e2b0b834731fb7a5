// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ExpenseHandler holds dependencies for expense-related handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: logger,
	}
}

// --- Request DTOs ---

type addExpenseRequest struct {
	Amount      *float64 `json:"amount" validate:"required"`
	Category    string   `json:"category" validate:"required,max=32"`
	Date        string   `json:"date" validate:"required"`
	Description string   `json:"description" validate:"max=256"`
}

// --- Response DTOs ---

// expenseResponse is the wire representation of a single expense.
// Dates serialize as calendar days, not timestamps.
type expenseResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toExpenseResponse(e *entity.Expense) expenseResponse {
	return expenseResponse{
		ID:          e.ID.String(),
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date.Format(entity.DateLayout),
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

// AddExpense handles the request to record a new expense for the caller.
func (h *ExpenseHandler) AddExpense(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req addExpenseRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid expense input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if *req.Amount < 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Amount must be non-negative")
	}

	date, err := time.Parse(entity.DateLayout, req.Date)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Date must be in YYYY-MM-DD format")
	}

	output, err := h.uc.AddExpense(c.Request().Context(), &usecase.AddExpenseInput{
		OwnerID:     ownerID,
		Amount:      *req.Amount,
		Category:    req.Category,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExpenseResponse(output.Expense), "Expense recorded successfully")
}

// ListExpenses handles the request to list all of the caller's expenses.
func (h *ExpenseHandler) ListExpenses(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.uc.ListExpenses(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	expenses := make([]expenseResponse, 0, len(output.Expenses))
	for _, e := range output.Expenses {
		expenses = append(expenses, toExpenseResponse(e))
	}

	return response.Success(c, http.StatusOK, expenses, "Expenses retrieved successfully")
}

// DeleteExpense handles the request to delete one of the caller's expenses.
func (h *ExpenseHandler) DeleteExpense(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Expense ID must be a valid UUID")
	}

	if err := h.uc.DeleteExpense(c.Request().Context(), &usecase.DeleteExpenseInput{
		OwnerID:   ownerID,
		ExpenseID: expenseID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Expense deleted"}, "Expense deleted successfully")
}

// callerID extracts the authenticated user's ID set by the auth middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
