package airports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailers/internal/domain/entity"
)

func TestResolve_CaseInsensitive(t *testing.T) {
	for _, code := range []string{"MIA", "mia", "Mia", " mia "} {
		anchor, ok := Resolve(code)
		require.True(t, ok, "code %q should resolve", code)
		assert.Equal(t, "MIA", anchor.Code)
		assert.InDelta(t, 25.7959, anchor.Coordinate.Lat, 1e-6)
	}
}

func TestResolve_Unknown(t *testing.T) {
	_, ok := Resolve("ZZZ")
	assert.False(t, ok)
}

func TestResolveUserLocation(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid", lat: 25.79, lng: -80.29},
		{name: "poles are valid", lat: 90, lng: 180},
		{name: "latitude too high", lat: 90.1, lng: 0, wantErr: true},
		{name: "latitude too low", lat: -91, lng: 0, wantErr: true},
		{name: "longitude too high", lat: 0, lng: 180.5, wantErr: true},
		{name: "longitude too low", lat: 0, lng: -181, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			point, err := ResolveUserLocation(tt.lat, tt.lng)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinate)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, entity.GeoPoint{Lat: tt.lat, Lng: tt.lng}, point)
		})
	}
}

func TestForCity(t *testing.T) {
	miami := ForCity("miami", "fl")
	require.NotEmpty(t, miami)

	codes := make([]string, 0, len(miami))
	for _, anchor := range miami {
		codes = append(codes, anchor.Code)
	}
	assert.Contains(t, codes, "MIA")
	assert.Contains(t, codes, "OPF")

	assert.Empty(t, ForCity("Miami", "TX"))
}

func TestNearest(t *testing.T) {
	// Downtown Miami should be closest to MIA among bundled anchors.
	anchor, distance := Nearest(entity.GeoPoint{Lat: 25.7617, Lng: -80.1918})
	require.NotNil(t, anchor)
	assert.Equal(t, "MIA", anchor.Code)
	assert.Less(t, distance, 15.0)
}

func TestTableIntegrity(t *testing.T) {
	seen := make(map[string]bool, len(All()))
	for _, anchor := range All() {
		assert.NotEmpty(t, anchor.Name)
		assert.True(t, anchor.Coordinate.Valid(), "bad coordinate for %s", anchor.Code)
		assert.False(t, seen[anchor.Code], "duplicate code %s", anchor.Code)
		assert.NotEmpty(t, anchor.ServedCities, "no served cities for %s", anchor.Code)
		seen[anchor.Code] = true
	}
}
