package handler

import (
	"net/http"
	"testing"

	mockUc "ledger/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpenseHandler_AddExpense_MissingAmount(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/expenses", `{"category":"food","date":"2025-06-15"}`)
	c.Set("userID", uuid.New())

	requireValidationRejected(t, h.AddExpense(c))
	uc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestExpenseHandler_AddExpense_MissingCategory(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/expenses", `{"amount":12.50,"date":"2025-06-15"}`)
	c.Set("userID", uuid.New())

	requireValidationRejected(t, h.AddExpense(c))
	uc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestExpenseHandler_AddExpense_MalformedDate(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/expenses", `{"amount":12.50,"category":"food","date":"15-06-2025"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.AddExpense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestExpenseHandler_AddExpense_NegativeAmount(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	c, rec := newHandlerContext(t, http.MethodPost, "/expenses", `{"amount":-5,"category":"food","date":"2025-06-15"}`)
	c.Set("userID", uuid.New())

	require.NoError(t, h.AddExpense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestExpenseHandler_AddExpense_NoIdentity(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	// Without a verified identity on the context no expense can be recorded.
	c, rec := newHandlerContext(t, http.MethodPost, "/expenses", `{"amount":12.50,"category":"food","date":"2025-06-15"}`)

	require.NoError(t, h.AddExpense(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "AddExpense", mock.Anything, mock.Anything)
}

func TestExpenseHandler_DeleteExpense_MalformedID(t *testing.T) {
	uc := mockUc.NewMockExpenseUsecase(t)
	h := NewExpenseHandler(uc, newDiscardLogger())

	c, rec := newHandlerContext(t, http.MethodDelete, "/expenses/not-a-uuid", "")
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.DeleteExpense(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "DeleteExpense", mock.Anything, mock.Anything)
}
