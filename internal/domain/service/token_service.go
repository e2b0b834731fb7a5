package service

import (
	"time"

	"github.com/google/uuid"
)

// Token type markers carried in the "type" claim so an access token can never
// be replayed as a refresh token or vice versa.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims holds the verified identity extracted from a token.
type Claims struct {
	UserID uuid.UUID
	Type   string
}

// TokenService defines the interface for generating and validating bearer tokens.
// This abstracts the details of token creation (JWT) from the use cases.
// A token is valid until its expiry passes or its signature fails verification;
// there is no server-side state for access tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given user.
	GenerateTokens(userID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature integrity and expiry of a token string
	// and returns the encoded identity on success.
	ValidateToken(tokenString string) (*Claims, error)

	// HashToken returns the hex-encoded SHA-256 digest of a raw token, used to
	// store refresh tokens at rest without keeping the raw credential.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
