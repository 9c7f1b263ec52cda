package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaKind distinguishes gallery photos from before/after shots and videos.
type MediaKind string

const (
	MediaKindPhoto       MediaKind = "photo"
	MediaKindBeforeAfter MediaKind = "before_after"
	MediaKindVideo       MediaKind = "video"
)

// Valid reports whether the kind is a known media kind.
func (k MediaKind) Valid() bool {
	switch k {
	case MediaKindPhoto, MediaKindBeforeAfter, MediaKindVideo:
		return true
	}

	return false
}

// MediaAsset is the metadata row for an uploaded dashboard asset.
// The bytes live in the media blob bucket under BlobKey.
type MediaAsset struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Kind        MediaKind `json:"kind"`
	BlobKey     string    `json:"blob_key"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Caption     string    `json:"caption,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
