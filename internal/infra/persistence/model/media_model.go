package model

import (
	"time"

	"github.com/google/uuid"
)

// MediaAssetModel is the GORM-specific struct for the 'media_assets' table.
// The asset bytes live in the blob bucket; this is metadata only.
type MediaAssetModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"type:varchar(50);not null"`
	BlobKey     string    `gorm:"type:varchar(512);unique;not null"`
	ContentType string    `gorm:"type:varchar(100);not null"`
	SizeBytes   int64     `gorm:"not null"`
	Caption     string    `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaAssetModel) TableName() string {
	return "media_assets"
}
