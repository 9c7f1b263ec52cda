package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerDeviceModel is the GORM-specific struct for the 'owner_devices' table.
// It represents an owner's device registered for push notifications.
type OwnerDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken  string    `gorm:"type:varchar(255);unique;not null"`
	Platform  string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OwnerDeviceModel) TableName() string {
	return "owner_devices"
}
