package entity

import (
	"time"

	"github.com/google/uuid"
)

// Owner roles. RoleOwner is granted when a claim is verified.
const (
	RoleAccount = "account"
	RoleOwner   = "owner"
)

// Owner is a dashboard account for a business owner.
type Owner struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the owner carries the given role.
func (o *Owner) HasRole(role string) bool {
	for _, r := range o.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// RefreshToken is a persisted, rotatable refresh token for an owner session.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	TokenHash string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	RevokedAt *time.Time
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the token is past its expiry.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// Revoked reports whether the token has been explicitly revoked.
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}
