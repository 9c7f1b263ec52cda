package proximity

import (
	"sort"

	"detailers/internal/domain/entity"
)

// RankedCompany is a company enriched with its computed distance from the
// request anchor. Distance is nil when no anchor was supplied or the company
// has no location. Never persisted; recomputed per query.
type RankedCompany struct {
	*entity.Company
	Distance *float64 `json:"distance,omitempty"` // Miles from the anchor.
}

// SortByDistance orders companies ascending by distance from the anchor,
// closest first. Companies without a location are excluded; callers wanting
// to retain them must handle them separately. The sort is stable: ties keep
// their input order rather than breaking on a secondary key.
func SortByDistance(companies []*entity.Company, anchor entity.GeoPoint) []RankedCompany {
	ranked := make([]RankedCompany, 0, len(companies))
	for _, company := range companies {
		if company.Location == nil {
			continue
		}
		d := Distance(anchor, *company.Location)
		ranked = append(ranked, RankedCompany{Company: company, Distance: &d})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return *ranked[i].Distance < *ranked[j].Distance
	})

	return ranked
}
