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

func TestUserHandler_Register_MissingPassword(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	// No expectation on the mock: a request without a password must be
	// rejected before the usecase is reached, so no user can be created.
	c, _ := newHandlerContext(t, http.MethodPost, "/auth/register", `{"username":"alice"}`)

	requireValidationRejected(t, h.Register(c))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_MissingUsername(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/register", `{"password":"correct horse battery staple"}`)

	requireValidationRejected(t, h.Register(c))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"short"}`)

	requireValidationRejected(t, h.Register(c))
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_MissingUsername(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login", `{"password":"whatever"}`)

	requireValidationRejected(t, h.Login(c))
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_MissingPassword(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/login", `{"username":"alice"}`)

	requireValidationRejected(t, h.Login(c))
	uc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
}

func TestUserHandler_RefreshToken_MissingToken(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	c, _ := newHandlerContext(t, http.MethodPost, "/auth/refresh", `{}`)

	requireValidationRejected(t, h.RefreshToken(c))
	uc.AssertNotCalled(t, "RefreshToken", mock.Anything, mock.Anything)
}

func TestUserHandler_LogoutAll(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	userID := uuid.New()
	uc.EXPECT().LogoutAll(mock.Anything, userID).Return(nil)

	c, rec := newHandlerContext(t, http.MethodPost, "/auth/logout-all", "")
	c.Set("userID", userID)

	require.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_LogoutAll_NoIdentity(t *testing.T) {
	uc := mockUc.NewMockUserUsecase(t)
	h := NewUserHandler(uc, newDiscardLogger())

	// Without a verified identity on the context nothing is revoked.
	c, rec := newHandlerContext(t, http.MethodPost, "/auth/logout-all", "")

	require.NoError(t, h.LogoutAll(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "LogoutAll", mock.Anything, mock.Anything)
}
