package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims carries the verified claims extracted from a session token.
type TokenClaims struct {
	UserID uuid.UUID
	Roles  []string
	Type   string
}

// TokenService defines the interface for issuing and validating session tokens.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for an owner and their roles.
	GenerateTokens(ownerID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies a token string and returns its claims.
	ValidateToken(tokenString string) (*TokenClaims, error)

	// HashToken returns the storage hash of a raw token. Only the hash is
	// ever persisted.
	HashToken(token string) string

	// GetRefreshTokenDuration returns the configured lifetime of refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
