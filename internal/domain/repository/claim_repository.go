package repository

import (
	"context"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for claim persistence.
var (
	// ErrClaimNotFound is returned when a claim is not found.
	ErrClaimNotFound = errors.New("claim not found")
	// ErrClaimAlreadyOpen is returned when a company already has a pending claim.
	ErrClaimAlreadyOpen = errors.New("company already has a pending claim")
)

// ClaimRepository defines the interface for ownership-claim database operations.
type ClaimRepository interface {
	// CreateClaim persists a new pending claim.
	CreateClaim(ctx context.Context, claim *entity.Claim) error

	// FindClaimByID retrieves a claim by its unique ID.
	FindClaimByID(ctx context.Context, id uuid.UUID) (*entity.Claim, error)

	// FindPendingClaimByCompany retrieves the open claim for a company, if any.
	FindPendingClaimByCompany(ctx context.Context, companyID uuid.UUID) (*entity.Claim, error)

	// FindClaimsByOwner retrieves all claims filed by an owner, newest first.
	FindClaimsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Claim, error)

	// FindVerifiedClaim retrieves the verified claim tying an owner to a company.
	FindVerifiedClaim(ctx context.Context, ownerID, companyID uuid.UUID) (*entity.Claim, error)

	// UpdateClaim updates an existing claim record.
	UpdateClaim(ctx context.Context, claim *entity.Claim) error
}
