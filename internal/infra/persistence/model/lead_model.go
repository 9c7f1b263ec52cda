package model

import (
	"time"

	"github.com/google/uuid"
)

// LeadModel is the GORM-specific struct for the 'leads' table.
type LeadModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	AircraftType string    `gorm:"type:varchar(100)"`
	Message      string    `gorm:"type:text"`
	Status       string    `gorm:"type:varchar(50);not null;default:'new';index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeadModel) TableName() string {
	return "leads"
}
