package proximity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailers/internal/domain/entity"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func scored(name string, score int) *entity.Company {
	return &entity.Company{Name: name, TrustScore: intPtr(score)}
}

func TestSearch_TextQueryMatchesNameAndDescription(t *testing.T) {
	companies := []*entity.Company{
		{Name: "Gulf Coast Detailing", Description: "Ceramic Coating Application and brightwork"},
		{Name: "Ceramic Pros Aviation", Description: "paint correction"},
		{Name: "Wing Wax Co", Description: "wash and wax"},
	}

	result := Search(companies, Request{TextQuery: "ceramic"})

	require.Equal(t, 2, result.TotalMatched)
	assert.Equal(t, "Gulf Coast Detailing", result.Companies[0].Name)
	assert.Equal(t, "Ceramic Pros Aviation", result.Companies[1].Name)
}

func TestSearch_RadiusFilterWithAnchor(t *testing.T) {
	companies := []*entity.Company{
		located("opa locka shine", 25.79, -80.29),
		located("socal aero wash", 33.9425, -118.408),
	}

	result := Search(companies, Request{
		Anchor:      &miamiIntl,
		RadiusMiles: floatPtr(10),
	})

	require.Equal(t, 1, result.TotalMatched)
	assert.Equal(t, "opa locka shine", result.Companies[0].Name)
	require.NotNil(t, result.Companies[0].Distance)
	assert.InDelta(t, 0.4, *result.Companies[0].Distance, 0.1)
}

func TestSearch_TrustScoreDescendingDefault(t *testing.T) {
	companies := []*entity.Company{
		scored("seventy-two", 72),
		scored("ninety-four", 94),
		scored("eighty-seven", 87),
	}

	result := Search(companies, Request{SortKey: SortByTrustScore})

	require.Len(t, result.Companies, 3)
	assert.Equal(t, "ninety-four", result.Companies[0].Name)
	assert.Equal(t, "eighty-seven", result.Companies[1].Name)
	assert.Equal(t, "seventy-two", result.Companies[2].Name)
}

func TestSearch_TrustScoreMissingCountsAsZero(t *testing.T) {
	companies := []*entity.Company{
		{Name: "unrated"},
		scored("rated", 10),
	}

	result := Search(companies, Request{SortKey: SortByTrustScore})

	assert.Equal(t, "rated", result.Companies[0].Name)
	assert.Equal(t, "unrated", result.Companies[1].Name)
}

func TestSearch_NameAscendingAndInverted(t *testing.T) {
	companies := []*entity.Company{
		{Name: "Charlie"}, {Name: "Alpha"}, {Name: "Bravo"},
	}

	asc := Search(companies, Request{SortKey: SortByName})
	assert.Equal(t, "Alpha", asc.Companies[0].Name)
	assert.Equal(t, "Charlie", asc.Companies[2].Name)

	desc := Search(companies, Request{SortKey: SortByName, SortOrder: OrderDesc})
	assert.Equal(t, "Charlie", desc.Companies[0].Name)
}

func TestSearch_CreatedAtNewestFirst(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	companies := []*entity.Company{
		{Name: "oldest", CreatedAt: base},
		{Name: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{Name: "middle", CreatedAt: base.Add(24 * time.Hour)},
	}

	result := Search(companies, Request{SortKey: SortByCreatedAt})

	assert.Equal(t, "newest", result.Companies[0].Name)
	assert.Equal(t, "oldest", result.Companies[2].Name)
}

func TestSearch_DistanceSortWithoutAnchorFallsBackToTrustScore(t *testing.T) {
	companies := []*entity.Company{
		scored("low", 10),
		scored("high", 90),
	}

	result := Search(companies, Request{SortKey: SortByDistanceKey})

	require.Len(t, result.Companies, 2)
	assert.Equal(t, "high", result.Companies[0].Name)
	assert.Nil(t, result.Companies[0].Distance)
}

func TestSearch_DistanceSortDescendingKeepsTieOrder(t *testing.T) {
	// Two companies at the same point tie exactly; a third sits farther out.
	companies := []*entity.Company{
		located("first at the field", 25.79, -80.29),
		located("second at the field", 25.79, -80.29),
		located("up the coast", 26.68, -80.09),
	}

	result := Search(companies, Request{
		Anchor:    &miamiIntl,
		SortKey:   SortByDistanceKey,
		SortOrder: OrderDesc,
	})

	require.Len(t, result.Companies, 3)
	assert.Equal(t, "up the coast", result.Companies[0].Name)
	// Ties keep insertion order in the descending direction too.
	assert.Equal(t, "first at the field", result.Companies[1].Name)
	assert.Equal(t, "second at the field", result.Companies[2].Name)
}

func TestSearch_DistanceAttachedEvenWhenSortIsNotDistance(t *testing.T) {
	companies := []*entity.Company{located("near the field", 25.79, -80.29)}

	result := Search(companies, Request{
		Anchor:  &miamiIntl,
		SortKey: SortByTrustScore,
	})

	require.Len(t, result.Companies, 1)
	require.NotNil(t, result.Companies[0].Distance)
	assert.InDelta(t, 0.4, *result.Companies[0].Distance, 0.1)
}

func TestSearch_Pagination(t *testing.T) {
	companies := []*entity.Company{
		scored("a", 50), scored("b", 40), scored("c", 30), scored("d", 20), scored("e", 10),
	}

	page1 := Search(companies, Request{SortKey: SortByTrustScore, Page: 1, PageSize: 2})
	require.Equal(t, 5, page1.TotalMatched)
	require.Equal(t, 3, page1.TotalPages)
	require.Len(t, page1.Companies, 2)
	assert.Equal(t, "a", page1.Companies[0].Name)
	assert.Equal(t, "b", page1.Companies[1].Name)

	page3 := Search(companies, Request{SortKey: SortByTrustScore, Page: 3, PageSize: 2})
	require.Len(t, page3.Companies, 1)
	assert.Equal(t, "e", page3.Companies[0].Name)
}

func TestSearch_PaginationCompleteness(t *testing.T) {
	companies := []*entity.Company{
		scored("a", 90), scored("b", 80), scored("c", 70),
		scored("d", 60), scored("e", 50), scored("f", 40), scored("g", 30),
	}

	req := Request{SortKey: SortByTrustScore, PageSize: 3}
	first := Search(companies, req)

	var seen []string
	for page := 1; page <= first.TotalPages; page++ {
		req.Page = page
		for _, rc := range Search(companies, req).Companies {
			seen = append(seen, rc.Name)
		}
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, seen)
}

func TestSearch_ClampsInvalidPaging(t *testing.T) {
	companies := []*entity.Company{scored("only", 1)}

	result := Search(companies, Request{Page: -3, PageSize: 0})

	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Companies, 1)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearch_PageBeyondEnd(t *testing.T) {
	companies := []*entity.Company{scored("only", 1)}

	result := Search(companies, Request{Page: 9, PageSize: 10})

	assert.Empty(t, result.Companies)
	assert.Equal(t, 1, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearch_EmptyInput(t *testing.T) {
	result := Search(nil, Request{TextQuery: "anything"})

	assert.Empty(t, result.Companies)
	assert.Equal(t, 0, result.TotalMatched)
	assert.Equal(t, 1, result.TotalPages)
}

func TestSearch_Idempotent(t *testing.T) {
	companies := []*entity.Company{
		located("opa locka shine", 25.79, -80.29),
		located("doral jet prep", 25.81, -80.33),
	}
	req := Request{Anchor: &miamiIntl, RadiusMiles: floatPtr(25), SortKey: SortByDistanceKey}

	first := Search(companies, req)
	second := Search(companies, req)

	assert.Equal(t, first, second)
}
