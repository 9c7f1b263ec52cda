package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailers/internal/domain/entity"
)

func located(name string, lat, lng float64) *entity.Company {
	return &entity.Company{
		Name:     name,
		Location: &entity.GeoPoint{Lat: lat, Lng: lng},
	}
}

func TestFilterByRadius_KeepsOnlyWithinRadius(t *testing.T) {
	companies := []*entity.Company{
		located("opa locka shine", 25.79, -80.29),  // ~0.4 mi from MIA
		located("socal aero wash", 33.9425, -118.408), // ~2342 mi
		located("doral jet prep", 25.81, -80.33),   // a few miles
	}

	filtered := FilterByRadius(companies, miamiIntl, 10)

	require.Len(t, filtered, 2)
	for _, company := range filtered {
		assert.LessOrEqual(t, Distance(miamiIntl, *company.Location), 10.0)
	}
}

func TestFilterByRadius_ExcludedAreActuallyOutside(t *testing.T) {
	companies := []*entity.Company{
		located("a", 25.79, -80.29),
		located("b", 26.5, -80.1),
		located("c", 33.9425, -118.408),
	}

	filtered := FilterByRadius(companies, miamiIntl, 10)
	kept := make(map[string]bool, len(filtered))
	for _, company := range filtered {
		kept[company.Name] = true
	}

	for _, company := range companies {
		if kept[company.Name] {
			continue
		}
		assert.Greater(t, Distance(miamiIntl, *company.Location), 10.0)
	}
}

func TestFilterByRadius_DropsCompaniesWithoutLocation(t *testing.T) {
	companies := []*entity.Company{
		{Name: "no coords yet"},
		located("on the field", 25.7959, -80.287),
	}

	filtered := FilterByRadius(companies, miamiIntl, 50)

	require.Len(t, filtered, 1)
	assert.Equal(t, "on the field", filtered[0].Name)
}

func TestFilterByRadius_StableOrder(t *testing.T) {
	companies := []*entity.Company{
		located("third closest", 25.9, -80.2),
		located("closest", 25.7959, -80.287),
		located("second closest", 25.82, -80.3),
	}

	filtered := FilterByRadius(companies, miamiIntl, 50)

	require.Len(t, filtered, 3)
	assert.Equal(t, "third closest", filtered[0].Name)
	assert.Equal(t, "closest", filtered[1].Name)
	assert.Equal(t, "second closest", filtered[2].Name)
}

func TestFilterByRadius_NonPositiveRadius(t *testing.T) {
	companies := []*entity.Company{located("anywhere", 25.7959, -80.287)}

	assert.Empty(t, FilterByRadius(companies, miamiIntl, 0))
	assert.Empty(t, FilterByRadius(companies, miamiIntl, -5))
}

func TestFilterByRadius_NearAntimeridian(t *testing.T) {
	anchor := entity.GeoPoint{Lat: -17.75, Lng: 179.95} // near Fiji
	companies := []*entity.Company{
		located("across the line", -17.75, -179.95), // ~7 mi west, other sign
		located("far away", -17.75, 170.0),
	}

	filtered := FilterByRadius(companies, anchor, 25)

	require.Len(t, filtered, 1)
	assert.Equal(t, "across the line", filtered[0].Name)
}
