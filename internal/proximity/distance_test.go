package proximity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"detailers/internal/domain/entity"
)

var (
	miamiIntl = entity.GeoPoint{Lat: 25.7959, Lng: -80.287}
	laxArea   = entity.GeoPoint{Lat: 33.9425, Lng: -118.408}
)

func TestDistance_Identity(t *testing.T) {
	points := []entity.GeoPoint{
		{Lat: 0, Lng: 0},
		miamiIntl,
		{Lat: -89.9, Lng: 179.9},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetry(t *testing.T) {
	d1 := Distance(miamiIntl, laxArea)
	d2 := Distance(laxArea, miamiIntl)

	assert.InEpsilon(t, d1, d2, 1e-9)
}

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		a, b      entity.GeoPoint
		wantMiles float64
		tolerance float64
	}{
		{
			name:      "listing next to Miami International",
			a:         miamiIntl,
			b:         entity.GeoPoint{Lat: 25.79, Lng: -80.29},
			wantMiles: 0.4,
			tolerance: 0.1,
		},
		{
			name:      "Miami to Los Angeles",
			a:         miamiIntl,
			b:         laxArea,
			wantMiles: 2342,
			tolerance: 15,
		},
		{
			name:      "quarter of the equator",
			a:         entity.GeoPoint{Lat: 0, Lng: 0},
			b:         entity.GeoPoint{Lat: 0, Lng: 90},
			wantMiles: 6218.4, // earthRadiusMiles * pi/2
			tolerance: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.wantMiles, Distance(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistance_Antipodal(t *testing.T) {
	a := entity.GeoPoint{Lat: 0, Lng: 0}
	b := entity.GeoPoint{Lat: 0, Lng: 180}

	// Half the Earth's circumference, roughly 12,437 miles with this radius.
	assert.InDelta(t, 12436.8, Distance(a, b), 2)
}

func TestDistance_CollinearAdditivity(t *testing.T) {
	// Three points on the equator: b lies between a and c on the same great circle.
	a := entity.GeoPoint{Lat: 0, Lng: -10}
	b := entity.GeoPoint{Lat: 0, Lng: 5}
	c := entity.GeoPoint{Lat: 0, Lng: 20}

	sum := Distance(a, b) + Distance(b, c)
	assert.InDelta(t, Distance(a, c), sum, 1e-6)
}
