package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerModel mirrors the 'owners' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type OwnerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	Roles        string    `gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Devices       []*OwnerDeviceModel  `gorm:"foreignKey:OwnerID"`
	RefreshTokens []*RefreshTokenModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (OwnerModel) TableName() string {
	return "owners"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only token hashes land here.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
