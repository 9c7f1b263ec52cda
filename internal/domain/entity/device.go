package entity

import (
	"time"

	"github.com/google/uuid"
)

// OwnerDevice is a registered push-notification target for an owner account.
// Tokens reported invalid by the push provider are pruned by the lead worker.
type OwnerDevice struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	FCMToken  string    `json:"fcm_token"`
	Platform  string    `json:"platform"` // "ios", "android" or "web".
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
