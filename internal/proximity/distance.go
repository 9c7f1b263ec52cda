// Package proximity implements the geo search and ranking engine behind the
// directory's "near me" pages: great-circle distance, radius filtering,
// distance sorting and the composed search entry point.
//
// The whole package is pure computation over an in-memory candidate list.
// All distances are in statute miles.
package proximity

import (
	"math"

	"detailers/internal/domain/entity"
)

// earthRadiusMiles is the mean Earth radius used by the haversine formula.
const earthRadiusMiles = 3958.8

// Distance computes the great-circle distance in miles between two points
// using the haversine formula. Inputs are not validated; out-of-range or NaN
// coordinates propagate into the result instead of raising.
func Distance(a, b entity.GeoPoint) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
