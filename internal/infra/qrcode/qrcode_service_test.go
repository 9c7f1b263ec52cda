package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateClaimQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	companyID := uuid.New()
	claimID := uuid.New()

	qrBytes, err := service.GenerateClaimQR(companyID, claimID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateClaimQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateClaimQR(uuid.New(), uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ParseClaimQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	companyID := uuid.New()
	claimID := uuid.New()

	// Create valid QR data
	data := QRCodeData{
		CompanyID: companyID.String(),
		ClaimID:   claimID.String(),
		Type:      "claim",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	// Parse the QR data
	parsedCompanyID, parsedClaimID, err := service.ParseClaimQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, companyID, parsedCompanyID)
	assert.Equal(t, claimID, parsedClaimID)
}

func TestQRCodeService_ParseClaimQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, _, err := service.ParseClaimQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseClaimQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid type
	data := QRCodeData{
		CompanyID: uuid.New().String(),
		ClaimID:   uuid.New().String(),
		Type:      "invalid_type",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseClaimQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseClaimQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(256, "M")

	// Create QR data with invalid company UUID
	data := QRCodeData{
		CompanyID: "not-a-valid-uuid",
		ClaimID:   uuid.New().String(),
		Type:      "claim",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseClaimQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse company ID")

	// And an invalid claim UUID
	data = QRCodeData{
		CompanyID: uuid.New().String(),
		ClaimID:   "not-a-valid-uuid",
		Type:      "claim",
	}
	jsonData, err = json.Marshal(data)
	require.NoError(t, err)

	_, _, err = service.ParseClaimQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse claim ID")
}

func TestQRCodeService_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	companyID := uuid.New()
	claimID := uuid.New()

	// Generate QR code
	qrBytes, err := service.GenerateClaimQR(companyID, claimID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG cannot be decoded back here; in real usage a device scans
	// the image and hands us the embedded JSON string.
	data := QRCodeData{
		CompanyID: companyID.String(),
		ClaimID:   claimID.String(),
		Type:      "claim",
	}
	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	parsedCompanyID, parsedClaimID, err := service.ParseClaimQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, companyID, parsedCompanyID)
	assert.Equal(t, claimID, parsedClaimID)
}
