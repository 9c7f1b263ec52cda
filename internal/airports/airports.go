// Package airports holds the static airport reference table and the anchor
// resolver used by airport-anchored proximity searches. The table is built
// once at init and read-only afterwards, so it is safe for concurrent readers.
package airports

import (
	"strings"

	"detailers/internal/domain/entity"
)

// CityRef names a city an airport serves, ordered by relevance.
type CityRef struct {
	City  string `json:"city"`
	State string `json:"state"`
}

// AirportAnchor is one entry in the static reference table.
type AirportAnchor struct {
	Code         string          `json:"code"` // IATA-style, uppercase.
	Name         string          `json:"name"`
	Coordinate   entity.GeoPoint `json:"coordinate"`
	ServedCities []CityRef       `json:"served_cities"`
}

// anchors is the bundled reference dataset. Coordinates are airport reference
// points, not runway thresholds; close enough for directory ranking.
var anchors = []AirportAnchor{
	{Code: "MIA", Name: "Miami International", Coordinate: entity.GeoPoint{Lat: 25.7959, Lng: -80.287}, ServedCities: []CityRef{{"Miami", "FL"}, {"Doral", "FL"}, {"Coral Gables", "FL"}}},
	{Code: "OPF", Name: "Miami-Opa Locka Executive", Coordinate: entity.GeoPoint{Lat: 25.907, Lng: -80.2784}, ServedCities: []CityRef{{"Opa-locka", "FL"}, {"Miami", "FL"}}},
	{Code: "FXE", Name: "Fort Lauderdale Executive", Coordinate: entity.GeoPoint{Lat: 26.1973, Lng: -80.1707}, ServedCities: []CityRef{{"Fort Lauderdale", "FL"}}},
	{Code: "FLL", Name: "Fort Lauderdale-Hollywood International", Coordinate: entity.GeoPoint{Lat: 26.0726, Lng: -80.1527}, ServedCities: []CityRef{{"Fort Lauderdale", "FL"}, {"Hollywood", "FL"}}},
	{Code: "PBI", Name: "Palm Beach International", Coordinate: entity.GeoPoint{Lat: 26.6832, Lng: -80.0956}, ServedCities: []CityRef{{"West Palm Beach", "FL"}}},
	{Code: "TPA", Name: "Tampa International", Coordinate: entity.GeoPoint{Lat: 27.9755, Lng: -82.5332}, ServedCities: []CityRef{{"Tampa", "FL"}, {"St. Petersburg", "FL"}}},
	{Code: "MCO", Name: "Orlando International", Coordinate: entity.GeoPoint{Lat: 28.4312, Lng: -81.3081}, ServedCities: []CityRef{{"Orlando", "FL"}}},
	{Code: "ORL", Name: "Orlando Executive", Coordinate: entity.GeoPoint{Lat: 28.5455, Lng: -81.3329}, ServedCities: []CityRef{{"Orlando", "FL"}}},
	{Code: "JAX", Name: "Jacksonville International", Coordinate: entity.GeoPoint{Lat: 30.4941, Lng: -81.6879}, ServedCities: []CityRef{{"Jacksonville", "FL"}}},
	{Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", Coordinate: entity.GeoPoint{Lat: 33.6407, Lng: -84.4277}, ServedCities: []CityRef{{"Atlanta", "GA"}}},
	{Code: "PDK", Name: "DeKalb-Peachtree", Coordinate: entity.GeoPoint{Lat: 33.8756, Lng: -84.302}, ServedCities: []CityRef{{"Atlanta", "GA"}, {"Chamblee", "GA"}}},
	{Code: "CLT", Name: "Charlotte Douglas International", Coordinate: entity.GeoPoint{Lat: 35.2144, Lng: -80.9473}, ServedCities: []CityRef{{"Charlotte", "NC"}}},
	{Code: "IAD", Name: "Washington Dulles International", Coordinate: entity.GeoPoint{Lat: 38.9531, Lng: -77.4565}, ServedCities: []CityRef{{"Washington", "DC"}, {"Dulles", "VA"}}},
	{Code: "TEB", Name: "Teterboro", Coordinate: entity.GeoPoint{Lat: 40.8499, Lng: -74.0608}, ServedCities: []CityRef{{"Teterboro", "NJ"}, {"New York", "NY"}}},
	{Code: "HPN", Name: "Westchester County", Coordinate: entity.GeoPoint{Lat: 41.067, Lng: -73.7076}, ServedCities: []CityRef{{"White Plains", "NY"}}},
	{Code: "JFK", Name: "John F. Kennedy International", Coordinate: entity.GeoPoint{Lat: 40.6413, Lng: -73.7781}, ServedCities: []CityRef{{"New York", "NY"}}},
	{Code: "BOS", Name: "Boston Logan International", Coordinate: entity.GeoPoint{Lat: 42.3656, Lng: -71.0096}, ServedCities: []CityRef{{"Boston", "MA"}}},
	{Code: "BED", Name: "Laurence G. Hanscom Field", Coordinate: entity.GeoPoint{Lat: 42.47, Lng: -71.289}, ServedCities: []CityRef{{"Bedford", "MA"}, {"Boston", "MA"}}},
	{Code: "PHL", Name: "Philadelphia International", Coordinate: entity.GeoPoint{Lat: 39.8729, Lng: -75.2437}, ServedCities: []CityRef{{"Philadelphia", "PA"}}},
	{Code: "ORD", Name: "Chicago O'Hare International", Coordinate: entity.GeoPoint{Lat: 41.9742, Lng: -87.9073}, ServedCities: []CityRef{{"Chicago", "IL"}}},
	{Code: "PWK", Name: "Chicago Executive", Coordinate: entity.GeoPoint{Lat: 42.1142, Lng: -87.9015}, ServedCities: []CityRef{{"Wheeling", "IL"}, {"Chicago", "IL"}}},
	{Code: "DTW", Name: "Detroit Metropolitan Wayne County", Coordinate: entity.GeoPoint{Lat: 42.2162, Lng: -83.3554}, ServedCities: []CityRef{{"Detroit", "MI"}}},
	{Code: "MSP", Name: "Minneapolis-Saint Paul International", Coordinate: entity.GeoPoint{Lat: 44.8848, Lng: -93.2223}, ServedCities: []CityRef{{"Minneapolis", "MN"}, {"Saint Paul", "MN"}}},
	{Code: "DFW", Name: "Dallas/Fort Worth International", Coordinate: entity.GeoPoint{Lat: 32.8998, Lng: -97.0403}, ServedCities: []CityRef{{"Dallas", "TX"}, {"Fort Worth", "TX"}}},
	{Code: "DAL", Name: "Dallas Love Field", Coordinate: entity.GeoPoint{Lat: 32.8471, Lng: -96.8518}, ServedCities: []CityRef{{"Dallas", "TX"}}},
	{Code: "ADS", Name: "Addison", Coordinate: entity.GeoPoint{Lat: 32.9686, Lng: -96.8364}, ServedCities: []CityRef{{"Addison", "TX"}, {"Dallas", "TX"}}},
	{Code: "IAH", Name: "George Bush Intercontinental", Coordinate: entity.GeoPoint{Lat: 29.9902, Lng: -95.3368}, ServedCities: []CityRef{{"Houston", "TX"}}},
	{Code: "HOU", Name: "William P. Hobby", Coordinate: entity.GeoPoint{Lat: 29.6454, Lng: -95.2789}, ServedCities: []CityRef{{"Houston", "TX"}}},
	{Code: "AUS", Name: "Austin-Bergstrom International", Coordinate: entity.GeoPoint{Lat: 30.1975, Lng: -97.6664}, ServedCities: []CityRef{{"Austin", "TX"}}},
	{Code: "DEN", Name: "Denver International", Coordinate: entity.GeoPoint{Lat: 39.8561, Lng: -104.6737}, ServedCities: []CityRef{{"Denver", "CO"}}},
	{Code: "APA", Name: "Centennial", Coordinate: entity.GeoPoint{Lat: 39.5701, Lng: -104.8493}, ServedCities: []CityRef{{"Englewood", "CO"}, {"Denver", "CO"}}},
	{Code: "PHX", Name: "Phoenix Sky Harbor International", Coordinate: entity.GeoPoint{Lat: 33.4373, Lng: -112.0078}, ServedCities: []CityRef{{"Phoenix", "AZ"}}},
	{Code: "SDL", Name: "Scottsdale", Coordinate: entity.GeoPoint{Lat: 33.6229, Lng: -111.9105}, ServedCities: []CityRef{{"Scottsdale", "AZ"}, {"Phoenix", "AZ"}}},
	{Code: "LAS", Name: "Harry Reid International", Coordinate: entity.GeoPoint{Lat: 36.0862, Lng: -115.1537}, ServedCities: []CityRef{{"Las Vegas", "NV"}}},
	{Code: "HND", Name: "Henderson Executive", Coordinate: entity.GeoPoint{Lat: 35.9728, Lng: -115.1343}, ServedCities: []CityRef{{"Henderson", "NV"}, {"Las Vegas", "NV"}}},
	{Code: "LAX", Name: "Los Angeles International", Coordinate: entity.GeoPoint{Lat: 33.9425, Lng: -118.408}, ServedCities: []CityRef{{"Los Angeles", "CA"}}},
	{Code: "VNY", Name: "Van Nuys", Coordinate: entity.GeoPoint{Lat: 34.2098, Lng: -118.4896}, ServedCities: []CityRef{{"Van Nuys", "CA"}, {"Los Angeles", "CA"}}},
	{Code: "SNA", Name: "John Wayne Orange County", Coordinate: entity.GeoPoint{Lat: 33.6762, Lng: -117.8675}, ServedCities: []CityRef{{"Santa Ana", "CA"}, {"Irvine", "CA"}}},
	{Code: "SAN", Name: "San Diego International", Coordinate: entity.GeoPoint{Lat: 32.7338, Lng: -117.1933}, ServedCities: []CityRef{{"San Diego", "CA"}}},
	{Code: "SJC", Name: "Norman Y. Mineta San Jose International", Coordinate: entity.GeoPoint{Lat: 37.3639, Lng: -121.9289}, ServedCities: []CityRef{{"San Jose", "CA"}}},
	{Code: "SFO", Name: "San Francisco International", Coordinate: entity.GeoPoint{Lat: 37.6213, Lng: -122.379}, ServedCities: []CityRef{{"San Francisco", "CA"}}},
	{Code: "OAK", Name: "Oakland International", Coordinate: entity.GeoPoint{Lat: 37.7126, Lng: -122.2197}, ServedCities: []CityRef{{"Oakland", "CA"}}},
	{Code: "SEA", Name: "Seattle-Tacoma International", Coordinate: entity.GeoPoint{Lat: 47.4502, Lng: -122.3088}, ServedCities: []CityRef{{"Seattle", "WA"}, {"Tacoma", "WA"}}},
	{Code: "BFI", Name: "Boeing Field/King County International", Coordinate: entity.GeoPoint{Lat: 47.53, Lng: -122.302}, ServedCities: []CityRef{{"Seattle", "WA"}}},
	{Code: "PDX", Name: "Portland International", Coordinate: entity.GeoPoint{Lat: 45.5898, Lng: -122.5951}, ServedCities: []CityRef{{"Portland", "OR"}}},
	{Code: "SLC", Name: "Salt Lake City International", Coordinate: entity.GeoPoint{Lat: 40.7899, Lng: -111.9791}, ServedCities: []CityRef{{"Salt Lake City", "UT"}}},
	{Code: "BNA", Name: "Nashville International", Coordinate: entity.GeoPoint{Lat: 36.1263, Lng: -86.6774}, ServedCities: []CityRef{{"Nashville", "TN"}}},
	{Code: "STL", Name: "St. Louis Lambert International", Coordinate: entity.GeoPoint{Lat: 38.7499, Lng: -90.3748}, ServedCities: []CityRef{{"St. Louis", "MO"}}},
}

// byCode indexes the table for O(1) case-insensitive lookup.
var byCode = func() map[string]*AirportAnchor {
	index := make(map[string]*AirportAnchor, len(anchors))
	for i := range anchors {
		index[strings.ToUpper(anchors[i].Code)] = &anchors[i]
	}

	return index
}()

// All returns the full reference table, ordered as bundled.
func All() []AirportAnchor {
	return anchors
}
