package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailers/internal/domain/entity"
)

func company(name string, services []string, trust int, tier entity.Tier, claimed bool) *entity.Company {
	return &entity.Company{
		Name:       name,
		Services:   services,
		TrustScore: &trust,
		Tier:       tier,
		IsClaimed:  claimed,
	}
}

func TestRank_ServiceCoverageDominates(t *testing.T) {
	companies := []*entity.Company{
		company("partial fit", []string{"wash"}, 95, entity.TierFeatured, true),
		company("full fit", []string{"ceramic coating", "brightwork"}, 40, entity.TierBasic, false),
	}

	matches := Rank(companies, Answers{
		ServicesWanted: []string{"Ceramic Coating", "Brightwork"},
	})

	require.Len(t, matches, 2)
	assert.Equal(t, "full fit", matches[0].Name)
}

func TestRank_TierAndClaimBreakTies(t *testing.T) {
	companies := []*entity.Company{
		company("basic unclaimed", []string{"wash"}, 50, entity.TierBasic, false),
		company("premium claimed", []string{"wash"}, 50, entity.TierPremium, true),
	}

	matches := Rank(companies, Answers{ServicesWanted: []string{"wash"}})

	assert.Equal(t, "premium claimed", matches[0].Name)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestRank_DistanceDecay(t *testing.T) {
	near := company("near", []string{"wash"}, 50, entity.TierBasic, false)
	near.Location = &entity.GeoPoint{Lat: 25.80, Lng: -80.30}
	far := company("far", []string{"wash"}, 50, entity.TierBasic, false)
	far.Location = &entity.GeoPoint{Lat: 28.43, Lng: -81.31}

	seeker := entity.GeoPoint{Lat: 25.7959, Lng: -80.287}
	matches := Rank([]*entity.Company{far, near}, Answers{
		ServicesWanted: []string{"wash"},
		Location:       &seeker,
	})

	require.Len(t, matches, 2)
	assert.Equal(t, "near", matches[0].Name)
	require.NotNil(t, matches[0].Distance)
	assert.Less(t, *matches[0].Distance, *matches[1].Distance)
}

func TestRank_NoAnswersMeansFullCoverage(t *testing.T) {
	matches := Rank([]*entity.Company{
		company("anyone", nil, 0, entity.TierBasic, false),
	}, Answers{})

	require.Len(t, matches, 1)
	assert.InDelta(t, serviceWeight+tierWeight*tierScores[entity.TierBasic], matches[0].Score, 1e-9)
}

func TestRank_StableOnEqualScores(t *testing.T) {
	companies := []*entity.Company{
		company("first", []string{"wash"}, 50, entity.TierBasic, false),
		company("second", []string{"wash"}, 50, entity.TierBasic, false),
	}

	matches := Rank(companies, Answers{ServicesWanted: []string{"wash"}})

	assert.Equal(t, "first", matches[0].Name)
	assert.Equal(t, "second", matches[1].Name)
}

func TestRank_LimitTruncates(t *testing.T) {
	companies := []*entity.Company{
		company("a", nil, 90, entity.TierPremium, true),
		company("b", nil, 80, entity.TierBasic, false),
		company("c", nil, 70, entity.TierBasic, false),
	}

	matches := Rank(companies, Answers{Limit: 2})

	require.Len(t, matches, 2)
	assert.Equal(t, "a", matches[0].Name)
}

func TestRank_Deterministic(t *testing.T) {
	companies := []*entity.Company{
		company("a", []string{"wash", "wax"}, 61, entity.TierEnhanced, true),
		company("b", []string{"ceramic coating"}, 88, entity.TierFeatured, false),
	}
	answers := Answers{ServicesWanted: []string{"wax"}}

	assert.Equal(t, Rank(companies, answers), Rank(companies, answers))
}
