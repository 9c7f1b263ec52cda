package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus tracks the lifecycle of an ownership claim.
type ClaimStatus string

const (
	ClaimStatusPending  ClaimStatus = "pending"
	ClaimStatusVerified ClaimStatus = "verified"
	ClaimStatusRejected ClaimStatus = "rejected"
)

// Valid reports whether the status is a known claim state.
func (s ClaimStatus) Valid() bool {
	switch s {
	case ClaimStatusPending, ClaimStatusVerified, ClaimStatusRejected:
		return true
	}

	return false
}

// Claim records an owner's request to take over a directory listing.
// Verification is code-based: the code is delivered out of band (printed
// QR invite or a call to the business phone on file) and confirmed here.
type Claim struct {
	ID               uuid.UUID   `json:"id"`
	CompanyID        uuid.UUID   `json:"company_id"`
	OwnerID          uuid.UUID   `json:"owner_id"`
	VerificationCode string      `json:"-"` // Never serialized to clients.
	Status           ClaimStatus `json:"status"`
	VerifiedAt       *time.Time  `json:"verified_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}
