package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyModel mirrors the 'companies' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type CompanyModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Slug           string    `gorm:"type:varchar(255);unique;not null"`
	Description    string    `gorm:"type:text"`
	TrustScore     *int      `gorm:"type:smallint"`
	Tier           string    `gorm:"type:varchar(50);not null;default:'basic'"`
	IsClaimed      bool      `gorm:"not null;default:false"`
	Latitude       *float64  `gorm:"type:decimal(10,8)"`
	Longitude      *float64  `gorm:"type:decimal(11,8)"`
	City           string    `gorm:"type:varchar(100);index"`
	State          string    `gorm:"type:varchar(50);index"`
	Services       string    `gorm:"type:jsonb;not null;default:'[]'"`
	Certifications string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`

	Locations []*CompanyLocationModel `gorm:"foreignKey:CompanyID"`
	Media     []*MediaAssetModel      `gorm:"foreignKey:CompanyID"`
}

// TableName explicitly sets the table name for GORM.
func (CompanyModel) TableName() string {
	return "companies"
}
