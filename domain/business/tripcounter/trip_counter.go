package tripcounter

import "strings"

// Route identifies a trip by the station where it begins and the station where it ends
type Route struct {
	StartStation string
	EndStation   string
}

// TripCounter struct that counts the amount of trips between two stations
// + StartStation: name of the station in which the trips begin. Once set, it cannot change
// + EndStation: name of the station in which the trips end. Once set, it cannot change
// + Counter: counts the amount of trips done between StartStation and EndStation
type TripCounter struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Counter      int    `json:"counter"`
}

func NewTripCounter(startStation string, endStation string) *TripCounter {
	return &TripCounter{
		StartStation: startStation,
		EndStation:   endStation,
	}
}

func (tc *TripCounter) UpdateCounter() {
	tc.Counter += 1
}

func (tc *TripCounter) GetCounter() int {
	return tc.Counter
}

func (tc *TripCounter) GetKey() Route {
	return Route{StartStation: tc.StartStation, EndStation: tc.EndStation}
}

// less compares the routes of both counters, first by start station and then by end station
func (tc *TripCounter) less(other *TripCounter) bool {
	if tc.StartStation != other.StartStation {
		return strings.Compare(tc.StartStation, other.StartStation) < 0
	}
	return strings.Compare(tc.EndStation, other.EndStation) < 0
}

// RouteCounter groups trips by (start station, end station) and keeps a TripCounter for each route
type RouteCounter struct {
	counters map[Route]*TripCounter
}

func NewRouteCounter() *RouteCounter {
	return &RouteCounter{
		counters: make(map[Route]*TripCounter),
	}
}

// UpdateRoute adds one trip to the route that goes from startStation to endStation
func (rc *RouteCounter) UpdateRoute(startStation string, endStation string) {
	tripCounter := NewTripCounter(startStation, endStation)
	key := tripCounter.GetKey()
	if existing, ok := rc.counters[key]; ok {
		tripCounter = existing
	} else {
		rc.counters[key] = tripCounter
	}
	tripCounter.UpdateCounter()
}

// GetRoutesAmount returns the amount of distinct routes
func (rc *RouteCounter) GetRoutesAmount() int {
	return len(rc.counters)
}

// MostFrequent returns a copy of the TripCounter with the highest counter. Ties are broken
// by choosing the first route in (start station, end station) order.
// ok is false if no route was counted.
func (rc *RouteCounter) MostFrequent() (TripCounter, bool) {
	var best *TripCounter
	for _, tripCounter := range rc.counters {
		if best == nil ||
			tripCounter.Counter > best.Counter ||
			(tripCounter.Counter == best.Counter && tripCounter.less(best)) {
			best = tripCounter
		}
	}

	if best == nil {
		return TripCounter{}, false
	}
	return *best, true
}
