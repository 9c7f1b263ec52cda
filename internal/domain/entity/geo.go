// Package entity contains the core business objects of the project.
package entity

// GeoPoint is an immutable coordinate value.
type GeoPoint struct {
	Lat float64 `json:"lat"` // Latitude in degrees, [-90, 90].
	Lng float64 `json:"lng"` // Longitude in degrees, [-180, 180].
}

// Valid reports whether both coordinates are inside their legal ranges.
func (p GeoPoint) Valid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
