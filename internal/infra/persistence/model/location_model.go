package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyLocationModel is the GORM-specific struct for the 'company_locations' table.
type CompanyLocationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index:idx_locations_on_company"`
	Label       string    `gorm:"type:varchar(100);not null"`
	FullAddress string    `gorm:"type:text;not null"`
	Latitude    float64   `gorm:"type:decimal(10,8);not null"`
	Longitude   float64   `gorm:"type:decimal(11,8);not null"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyLocationModel) TableName() string {
	return "company_locations"
}
