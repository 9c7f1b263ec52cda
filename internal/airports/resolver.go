package airports

import (
	"strings"

	"detailers/internal/domain/entity"
	"detailers/internal/errors"
	"detailers/internal/proximity"
)

// ErrInvalidCoordinate is returned when a user-supplied coordinate is outside
// the legal latitude/longitude ranges.
var ErrInvalidCoordinate = errors.New("latitude or longitude out of range")

// Resolve looks up an airport anchor by code, case-insensitive.
func Resolve(code string) (*AirportAnchor, bool) {
	anchor, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]

	return anchor, ok
}

// ResolveUserLocation validates a device-reported coordinate and returns it
// as an anchor point. It performs no network lookups.
func ResolveUserLocation(lat, lng float64) (entity.GeoPoint, error) {
	p := entity.GeoPoint{Lat: lat, Lng: lng}
	if !p.Valid() {
		return entity.GeoPoint{}, ErrInvalidCoordinate
	}

	return p, nil
}

// ForCity returns the airports serving the given city, in table order.
// Matching is case-insensitive on the city name and exact on the state code.
func ForCity(city, state string) []AirportAnchor {
	var matched []AirportAnchor
	for _, anchor := range anchors {
		for _, ref := range anchor.ServedCities {
			if strings.EqualFold(ref.City, city) && strings.EqualFold(ref.State, state) {
				matched = append(matched, anchor)

				break
			}
		}
	}

	return matched
}

// Nearest returns the anchor closest to the given point and its distance in
// miles. The table is small enough that a linear scan beats any index.
func Nearest(point entity.GeoPoint) (*AirportAnchor, float64) {
	var best *AirportAnchor
	bestDistance := 0.0

	for i := range anchors {
		d := proximity.Distance(point, anchors[i].Coordinate)
		if best == nil || d < bestDistance {
			best = &anchors[i]
			bestDistance = d
		}
	}

	return best, bestDistance
}
