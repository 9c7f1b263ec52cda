// Package wizard implements the matchmaker flow's selection and scoring: a
// seeker answers a short questionnaire and gets a ranked shortlist of
// companies. Pure computation, shares distance math with the proximity engine.
package wizard

import (
	"sort"
	"strings"

	"detailers/internal/domain/entity"
	"detailers/internal/proximity"
)

// Scoring weights. Service coverage dominates; tier, trust and the claimed
// badge break up the field; distance decays linearly to zero at the cutoff.
const (
	serviceWeight  = 50.0
	trustWeight    = 25.0
	tierWeight     = 15.0
	claimedBonus   = 5.0
	distanceWeight = 20.0

	defaultCutoffMiles = 150.0
)

// Answers are the seeker's questionnaire inputs.
type Answers struct {
	ServicesWanted []string         `json:"services_wanted"`
	Location       *entity.GeoPoint `json:"location,omitempty"`
	CutoffMiles    float64          `json:"cutoff_miles,omitempty"` // 0 means defaultCutoffMiles.
	Limit          int              `json:"limit,omitempty"`        // 0 means all.
}

// Match is one scored shortlist entry.
type Match struct {
	*entity.Company
	Score    float64  `json:"score"`
	Distance *float64 `json:"distance,omitempty"` // Miles, when the seeker shared a location.
}

var tierScores = map[entity.Tier]float64{
	entity.TierBasic:     0.2,
	entity.TierEnhanced:  0.4,
	entity.TierPremium:   0.7,
	entity.TierFeatured:  0.9,
	entity.TierBundleAll: 1.0,
}

// Rank scores every company against the answers and returns the shortlist in
// descending score order. The sort is stable, so equal scores keep their
// input order. Deterministic for identical inputs.
func Rank(companies []*entity.Company, answers Answers) []Match {
	cutoff := answers.CutoffMiles
	if cutoff <= 0 {
		cutoff = defaultCutoffMiles
	}

	matches := make([]Match, 0, len(companies))
	for _, company := range companies {
		m := Match{Company: company}
		m.Score = baseScore(company, answers.ServicesWanted)

		if answers.Location != nil && company.Location != nil {
			d := proximity.Distance(*answers.Location, *company.Location)
			m.Distance = &d
			m.Score += distanceScore(d, cutoff)
		}

		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if answers.Limit > 0 && answers.Limit < len(matches) {
		matches = matches[:answers.Limit]
	}

	return matches
}

func baseScore(company *entity.Company, wanted []string) float64 {
	score := serviceWeight * serviceCoverage(company.Services, wanted)
	score += trustWeight * float64(company.TrustScoreOrZero()) / 100.0
	score += tierWeight * tierScores[company.Tier]
	if company.IsClaimed {
		score += claimedBonus
	}

	return score
}

// serviceCoverage returns the fraction of wanted services the company offers,
// case-insensitive. No wanted services means full coverage.
func serviceCoverage(offered, wanted []string) float64 {
	if len(wanted) == 0 {
		return 1.0
	}

	offeredSet := make(map[string]bool, len(offered))
	for _, s := range offered {
		offeredSet[strings.ToLower(strings.TrimSpace(s))] = true
	}

	hits := 0
	for _, w := range wanted {
		if offeredSet[strings.ToLower(strings.TrimSpace(w))] {
			hits++
		}
	}

	return float64(hits) / float64(len(wanted))
}

// distanceScore decays linearly from full weight at zero miles to nothing at
// the cutoff and beyond.
func distanceScore(miles, cutoff float64) float64 {
	if miles >= cutoff {
		return 0
	}

	return distanceWeight * (1 - miles/cutoff)
}
