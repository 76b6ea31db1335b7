package stationstats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities"
	"bikeshare/domain/entities/station"
	statsErrors "bikeshare/statistics/factory/stat_type/errors"
)

const (
	calculatorType = "station-stats"
	title          = "Calculating The Most Popular Stations and Trip..."
)

// StationStats most popular stations and trip.
// Distances are only set when the city has a station catalog that knows the stations.
type StationStats struct {
	MostCommonStartStation string                  `json:"most_common_start_station"`
	MostCommonEndStation   string                  `json:"most_common_end_station"`
	MostFrequentTrip       tripcounter.TripCounter `json:"most_frequent_trip"`
	MostFrequentTripKm     *float64                `json:"most_frequent_trip_km,omitempty"`
	AverageTripKm          *float64                `json:"average_trip_km,omitempty"`
}

type StationStatsCalculator struct {
	catalogs map[string]station.Catalog
}

// NewStationStatsCalculator catalogs may be empty, in that case no distances are reported
func NewStationStatsCalculator(catalogs map[string]station.Catalog) *StationStatsCalculator {
	if catalogs == nil {
		catalogs = make(map[string]station.Catalog)
	}
	return &StationStatsCalculator{
		catalogs: catalogs,
	}
}

func (sc *StationStatsCalculator) GetType() string {
	return calculatorType
}

// Calculate returns the most common start and end stations and the most frequent
// (start station, end station) combination with its amount of trips
func (sc *StationStatsCalculator) Calculate(filteredSet *dataset.FilteredSet) (*StationStats, error) {
	if filteredSet.IsEmpty() {
		return nil, statsErrors.ErrEmptyFilteredSet
	}

	startStation, _, _ := modecounter.NewModeCounterWithValues(filteredSet.StartStations()).Mode()
	endStation, _, _ := modecounter.NewModeCounterWithValues(filteredSet.EndStations()).Mode()

	routes := filteredSet.Routes()
	routeCounter := tripcounter.NewRouteCounter()
	for _, route := range routes {
		routeCounter.UpdateRoute(route.StartStation, route.EndStation)
	}
	mostFrequentTrip, _ := routeCounter.MostFrequent()
	log.Debugf("[calculator: %s][city: %s] %v distinct routes in %v trips", calculatorType, filteredSet.GetFilter().City, routeCounter.GetRoutesAmount(), len(routes))

	stationStats := &StationStats{
		MostCommonStartStation: startStation,
		MostCommonEndStation:   endStation,
		MostFrequentTrip:       mostFrequentTrip,
	}

	catalog, ok := sc.catalogs[filteredSet.GetFilter().City]
	if !ok || len(routes) == 0 {
		return stationStats, nil
	}

	if distance, ok := catalog.Distance(mostFrequentTrip.StartStation, mostFrequentTrip.EndStation); ok {
		stationStats.MostFrequentTripKm = &distance
	}

	distanceAccumulator := distanceaccumulator.NewDistanceAccumulator()
	for _, route := range routes {
		distance, ok := catalog.Distance(route.StartStation, route.EndStation)
		if !ok {
			distanceAccumulator.Skip()
			continue
		}
		distanceAccumulator.UpdateAccumulator(distance)
	}

	if averageDistance, err := distanceAccumulator.GetAverageDistance(); err == nil {
		stationStats.AverageTripKm = &averageDistance
	}
	if distanceAccumulator.Skipped > 0 {
		log.Debugf("[calculator: %s][city: %s] %v trips with stations missing from the catalog", calculatorType, filteredSet.GetFilter().City, distanceAccumulator.Skipped)
	}

	return stationStats, nil
}

func (sc *StationStatsCalculator) Run(filteredSet *dataset.FilteredSet) (*statsreport.StatsReport, error) {
	startTime := time.Now()

	stationStats, err := sc.Calculate(filteredSet)
	if err != nil {
		log.Debugf("[calculator: %s][status: ERROR] %s", calculatorType, err.Error())
		return nil, err
	}

	mostCommon := "The most commonly used %s is: %s"
	noData := "There are no %s names for the selected trips"
	var lines []string
	if stationStats.MostCommonStartStation != "" {
		lines = append(lines, fmt.Sprintf(mostCommon, "Start Station", stationStats.MostCommonStartStation))
	} else {
		lines = append(lines, fmt.Sprintf(noData, "Start Station"))
	}
	if stationStats.MostCommonEndStation != "" {
		lines = append(lines, fmt.Sprintf(mostCommon, "End Station", stationStats.MostCommonEndStation))
	} else {
		lines = append(lines, fmt.Sprintf(noData, "End Station"))
	}
	if stationStats.MostFrequentTrip.GetCounter() > 0 {
		lines = append(lines, fmt.Sprintf("The most frequent combination is Start Station : '%s' to End Station : '%s', count %v",
			stationStats.MostFrequentTrip.StartStation,
			stationStats.MostFrequentTrip.EndStation,
			stationStats.MostFrequentTrip.GetCounter(),
		))
	} else {
		lines = append(lines, "There are no complete start and end station combinations for the selected trips")
	}

	if stationStats.MostFrequentTripKm != nil {
		lines = append(lines, fmt.Sprintf("The distance between the stations of that combination is: %.2f km", *stationStats.MostFrequentTripKm))
	}
	if stationStats.AverageTripKm != nil {
		lines = append(lines, fmt.Sprintf("The average distance between start and end stations is: %.2f km", *stationStats.AverageTripKm))
	}

	metadata := entities.NewMetadata(filteredSet.GetFilter(), calculatorType, filteredSet.Len())
	return statsreport.NewStatsReport(metadata, title, lines, stationStats, time.Since(startTime)), nil
}
