package proximity

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"detailers/internal/domain/entity"
)

// metersPerMile converts the engine's statute miles to the meters orb expects.
const metersPerMile = 1609.344

// FilterByRadius keeps the companies whose location is within radiusMiles of
// the anchor. Companies without a location are dropped. The filter is stable:
// survivors keep their input order. A radius of zero or less yields an empty
// result.
func FilterByRadius(companies []*entity.Company, anchor entity.GeoPoint, radiusMiles float64) []*entity.Company {
	if radiusMiles <= 0 {
		return nil
	}

	center := orb.Point{anchor.Lng, anchor.Lat}
	bound := geo.NewBoundAroundPoint(center, radiusMiles*metersPerMile)
	// The bounding box circumscribes the search circle, so it never excludes a
	// point inside the radius. A box that wraps past the antimeridian comes
	// back normalized with min lon > max lon; skip the prefilter there, where
	// that guarantee no longer holds.
	usePrefilter := bound.Min.Lon() <= bound.Max.Lon()

	var filtered []*entity.Company
	for _, company := range companies {
		if company.Location == nil {
			continue
		}
		if usePrefilter && !bound.Contains(orb.Point{company.Location.Lng, company.Location.Lat}) {
			continue
		}
		if Distance(anchor, *company.Location) <= radiusMiles {
			filtered = append(filtered, company)
		}
	}

	return filtered
}
