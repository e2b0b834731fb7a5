package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ledger/internal/domain/service"
	mockSvc "ledger/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedHandler := false
	mw := NewAuthMiddleware(tokenSvc)
	handler := mw.Authenticate(func(c echo.Context) error {
		reachedHandler = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, reachedHandler
}

func TestAuthMiddleware_ValidAccessToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeAccess}, nil)

	rec, reached := runAuthenticate(t, tokenSvc, "Bearer valid-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthenticate(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	rec, reached := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("failed to parse token structure"))

	rec, reached := runAuthenticate(t, tokenSvc, "Bearer garbage")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	// A refresh token must not open protected routes.
	tokenSvc.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)

	rec, reached := runAuthenticate(t, tokenSvc, "Bearer refresh-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
