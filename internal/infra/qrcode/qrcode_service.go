package qrcode

import (
	"encoding/json"
	"fmt"

	"detailers/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	CompanyID string `json:"company_id"`
	ClaimID   string `json:"claim_id"`
	Type      string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateClaimQR generates a QR code PNG for a claim invite.
func (s *qrcodeService) GenerateClaimQR(companyID, claimID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		CompanyID: companyID.String(),
		ClaimID:   claimID.String(),
		Type:      "claim",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseClaimQR parses scanned QR data and returns the company and claim IDs.
func (s *qrcodeService) ParseClaimQR(qrData string) (uuid.UUID, uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "claim" {
		return uuid.Nil, uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	companyID, err := uuid.Parse(data.CompanyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse company ID: %w", err)
	}

	claimID, err := uuid.Parse(data.ClaimID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("failed to parse claim ID: %w", err)
	}

	return companyID, claimID, nil
}
