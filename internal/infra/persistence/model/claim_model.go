package model

import (
	"time"

	"github.com/google/uuid"
)

// ClaimModel is the GORM-specific struct for the 'claims' table.
// A partial unique index on (company_id) where status = 'pending' keeps at
// most one open claim per listing; see the migration scripts.
type ClaimModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerID          uuid.UUID `gorm:"type:uuid;not null;index"`
	VerificationCode string    `gorm:"type:varchar(64);not null"`
	Status           string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	VerifiedAt       *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClaimModel) TableName() string {
	return "claims"
}
