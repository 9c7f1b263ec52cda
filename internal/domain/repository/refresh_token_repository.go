package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh-token persistence.
// Only token hashes are stored; the raw token never touches the database.
type RefreshTokenRepository interface {
	// StoreRefreshToken persists a new refresh token record.
	StoreRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a token record by its hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeRefreshToken marks a token as revoked.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID) error

	// RevokeRefreshTokensByOwner revokes every active token for an owner (logout everywhere).
	RevokeRefreshTokensByOwner(ctx context.Context, ownerID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes records past their expiry.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
