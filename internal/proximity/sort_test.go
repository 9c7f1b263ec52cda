package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailers/internal/domain/entity"
)

func TestSortByDistance_AscendingMonotonic(t *testing.T) {
	companies := []*entity.Company{
		located("socal aero wash", 33.9425, -118.408),
		located("doral jet prep", 25.81, -80.33),
		located("opa locka shine", 25.79, -80.29),
	}

	ranked := SortByDistance(companies, miamiIntl)

	require.Len(t, ranked, 3)
	assert.Equal(t, "opa locka shine", ranked[0].Name)
	assert.Equal(t, "socal aero wash", ranked[2].Name)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, *ranked[i-1].Distance, *ranked[i].Distance)
	}
}

func TestSortByDistance_ExcludesUnlocated(t *testing.T) {
	companies := []*entity.Company{
		{Name: "no coords"},
		located("on the field", 25.7959, -80.287),
	}

	ranked := SortByDistance(companies, miamiIntl)

	require.Len(t, ranked, 1)
	assert.Equal(t, "on the field", ranked[0].Name)
	assert.NotNil(t, ranked[0].Distance)
}

func TestSortByDistance_StableOnTies(t *testing.T) {
	// Two listings at the exact same coordinate: insertion order must hold.
	companies := []*entity.Company{
		located("first registered", 25.80, -80.30),
		located("second registered", 25.80, -80.30),
		located("far", 26.50, -80.10),
	}

	ranked := SortByDistance(companies, miamiIntl)

	require.Len(t, ranked, 3)
	assert.Equal(t, "first registered", ranked[0].Name)
	assert.Equal(t, "second registered", ranked[1].Name)
}

func TestSortByDistance_EmptyInput(t *testing.T) {
	assert.Empty(t, SortByDistance(nil, miamiIntl))
}
