package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tier is the subscription/plan level attached to a directory listing.
// It drives display treatment and wizard weighting, not search correctness.
type Tier string

const (
	TierBasic     Tier = "basic"
	TierEnhanced  Tier = "enhanced"
	TierPremium   Tier = "premium"
	TierFeatured  Tier = "featured"
	TierBundleAll Tier = "bundle_all"
)

// Valid reports whether the tier is one of the known plan levels.
func (t Tier) Valid() bool {
	switch t {
	case TierBasic, TierEnhanced, TierPremium, TierFeatured, TierBundleAll:
		return true
	}

	return false
}

// Company is a directory listing for an aircraft-detailing business.
// A company without a location still appears in unfiltered listings but is
// excluded from any anchor-based filter or sort.
type Company struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"` // Unique, URL-safe.
	Description    string    `json:"description,omitempty"`
	TrustScore     *int      `json:"trust_score,omitempty"` // Reputation metric, 0-100.
	Tier           Tier      `json:"tier"`
	IsClaimed      bool      `json:"is_claimed"`
	Location       *GeoPoint `json:"location,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Services       []string  `json:"services,omitempty"` // Offered services, e.g. "ceramic coating".
	Certifications []string  `json:"certifications,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TrustScoreOrZero returns the trust score, treating a missing score as 0.
func (c *Company) TrustScoreOrZero() int {
	if c.TrustScore == nil {
		return 0
	}

	return *c.TrustScore
}

// CompanyLocation is an additional service location attached to a company,
// managed from the owner dashboard.
type CompanyLocation struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Label       string    `json:"label"` // e.g. "Main hangar", "KOPF satellite".
	FullAddress string    `json:"full_address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Point returns the location's coordinate.
func (l *CompanyLocation) Point() GeoPoint {
	return GeoPoint{Lat: l.Latitude, Lng: l.Longitude}
}
