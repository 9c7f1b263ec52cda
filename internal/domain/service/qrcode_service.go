package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for claim-invite QR generation and parsing.
// The QR invite is mailed to the business address on file; scanning it opens
// the claim flow pre-filled with the company and verification claim ID.
type QRCodeService interface {
	// GenerateClaimQR generates a QR code PNG for a claim invite.
	GenerateClaimQR(companyID, claimID uuid.UUID) ([]byte, error)

	// ParseClaimQR parses scanned QR data and returns the company and claim IDs.
	ParseClaimQR(qrData string) (companyID, claimID uuid.UUID, err error)
}
