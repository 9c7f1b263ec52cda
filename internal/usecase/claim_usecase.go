package usecase

import (
	"context"

	"detailers/internal/domain/entity"

	"github.com/google/uuid"
)

// ClaimUsecase defines the listing ownership-claim flow. A claim starts
// pending with a generated verification code; the code reaches the business
// out of band (mailed QR invite or a call to the phone on file) and the
// owner confirms it to verify the claim.
type ClaimUsecase interface {
	// StartClaim opens a pending claim on an unclaimed listing.
	StartClaim(ctx context.Context, ownerID, companyID uuid.UUID) (*entity.Claim, error)

	// GenerateClaimInvite renders the QR invite PNG for a pending claim.
	GenerateClaimInvite(ctx context.Context, claimID uuid.UUID) ([]byte, error)

	// VerifyClaim checks the verification code; on match it marks the claim
	// verified, flags the listing claimed and grants the owner role.
	VerifyClaim(ctx context.Context, ownerID, claimID uuid.UUID, code string) (*entity.Claim, error)

	// RejectClaim abandons a pending claim filed by the owner.
	RejectClaim(ctx context.Context, ownerID, claimID uuid.UUID) (*entity.Claim, error)

	// ListOwnerClaims returns the claims filed by an owner, newest first.
	ListOwnerClaims(ctx context.Context, ownerID uuid.UUID) ([]*entity.Claim, error)
}
