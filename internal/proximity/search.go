package proximity

import (
	"sort"
	"strings"

	"detailers/internal/domain/entity"
)

// DefaultPageSize is used when the request carries no usable page size.
const DefaultPageSize = 20

// SortKey selects the ordering of search results.
type SortKey string

const (
	SortByDistanceKey SortKey = "distance"    // Ascending. Requires an anchor.
	SortByTrustScore  SortKey = "trust_score" // Descending; missing score counts as 0.
	SortByName        SortKey = "name"        // Ascending lexicographic.
	SortByCreatedAt   SortKey = "created_at"  // Descending, newest first.
)

// SortOrder optionally inverts a sort key's default direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// Request describes one directory search. All fields beyond the entity list
// are optional; zero values mean "not set".
type Request struct {
	Anchor      *entity.GeoPoint // Reference point for distances.
	RadiusMiles *float64         // Radius filter, applied only with an anchor.
	TextQuery   string           // Case-insensitive substring over name and description.
	SortKey     SortKey
	SortOrder   SortOrder // Empty means the key's default direction.
	Page        int       // 1-based; values below 1 are clamped to 1.
	PageSize    int       // Values of 0 or less fall back to DefaultPageSize.
}

// Result is one ranked, paginated page of a search.
type Result struct {
	Companies    []RankedCompany `json:"companies"`
	TotalMatched int             `json:"total_matched"`
	Page         int             `json:"page"`
	TotalPages   int             `json:"total_pages"`
}

// Search runs the composed pipeline: text filter, radius filter, sort,
// pagination, distance enrichment. Zero matches is a normal result, never an
// error. Asking for a distance sort without an anchor falls back to
// trust_score descending so a user-facing search never hard-fails on a
// missing geolocation grant.
func Search(companies []*entity.Company, req Request) Result {
	matched := companies

	if q := strings.TrimSpace(req.TextQuery); q != "" {
		matched = filterByText(matched, q)
	}

	if req.Anchor != nil && req.RadiusMiles != nil {
		matched = FilterByRadius(matched, *req.Anchor, *req.RadiusMiles)
	}

	sortKey := req.SortKey
	if sortKey == SortByDistanceKey && req.Anchor == nil {
		sortKey = SortByTrustScore
	}

	var ranked []RankedCompany
	if sortKey == SortByDistanceKey {
		ranked = SortByDistance(matched, *req.Anchor)
		if req.SortOrder == OrderDesc {
			// Re-sort rather than reverse so equal distances keep their
			// insertion order in both directions.
			sort.SliceStable(ranked, func(i, j int) bool {
				return *ranked[i].Distance > *ranked[j].Distance
			})
		}
	} else {
		ranked = attachDistances(matched, req.Anchor)
		sortRanked(ranked, sortKey, req.SortOrder)
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(ranked)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Companies:    ranked[start:end],
		TotalMatched: total,
		Page:         page,
		TotalPages:   totalPages,
	}
}

// filterByText keeps companies whose name or description contains the query,
// case-insensitive. Plain substring match, not tokenized.
func filterByText(companies []*entity.Company, query string) []*entity.Company {
	needle := strings.ToLower(query)

	var filtered []*entity.Company
	for _, company := range companies {
		if strings.Contains(strings.ToLower(company.Name), needle) ||
			strings.Contains(strings.ToLower(company.Description), needle) {
			filtered = append(filtered, company)
		}
	}

	return filtered
}

// attachDistances wraps companies as RankedCompany, computing the distance
// for located companies whenever an anchor is present. The distance is
// attached even when the active sort is not by distance, so presentation can
// still show "3 mi away".
func attachDistances(companies []*entity.Company, anchor *entity.GeoPoint) []RankedCompany {
	ranked := make([]RankedCompany, 0, len(companies))
	for _, company := range companies {
		rc := RankedCompany{Company: company}
		if anchor != nil && company.Location != nil {
			d := Distance(*anchor, *company.Location)
			rc.Distance = &d
		}
		ranked = append(ranked, rc)
	}

	return ranked
}

func sortRanked(ranked []RankedCompany, key SortKey, order SortOrder) {
	var less func(i, j int) bool

	switch key {
	case SortByName:
		asc := order != OrderDesc
		less = func(i, j int) bool {
			if asc {
				return ranked[i].Name < ranked[j].Name
			}

			return ranked[i].Name > ranked[j].Name
		}
	case SortByCreatedAt:
		desc := order != OrderAsc
		less = func(i, j int) bool {
			if desc {
				return ranked[i].CreatedAt.After(ranked[j].CreatedAt)
			}

			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
	default: // SortByTrustScore and anything unrecognized.
		desc := order != OrderAsc
		less = func(i, j int) bool {
			if desc {
				return ranked[i].TrustScoreOrZero() > ranked[j].TrustScoreOrZero()
			}

			return ranked[i].TrustScoreOrZero() < ranked[j].TrustScoreOrZero()
		}
	}

	sort.SliceStable(ranked, less)
}
