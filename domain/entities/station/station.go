package station

import "github.com/umahmood/haversine"

// StationData struct that contains the location of a station
type StationData struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DistanceTo returns the great-circle distance in kilometers between both stations
func (sd StationData) DistanceTo(other StationData) float64 {
	origin := haversine.Coord{Lat: sd.Latitude, Lon: sd.Longitude}
	destination := haversine.Coord{Lat: other.Latitude, Lon: other.Longitude}
	_, km := haversine.Distance(origin, destination)
	return km
}

// Catalog stations of a city indexed by name
type Catalog map[string]StationData

// Distance returns the distance in kilometers between two stations of the catalog.
// ok is false if any of them is unknown.
func (c Catalog) Distance(startStation string, endStation string) (float64, bool) {
	start, ok := c[startStation]
	if !ok {
		return 0, false
	}

	end, ok := c[endStation]
	if !ok {
		return 0, false
	}

	return start.DistanceTo(end), true
}
