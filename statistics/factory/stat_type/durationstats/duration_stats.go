package durationstats

import (
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities"
)

const (
	calculatorType = "duration-stats"
	title          = "Calculating Trip Duration..."
)

// DurationStats total and mean trip duration, in seconds and split in units.
// MeanAvailable is false when there are no trips, MeanDuration and Mean are zero in that case.
type DurationStats struct {
	TotalDuration float64                       `json:"total_duration"`
	MeanDuration  float64                       `json:"mean_duration"`
	MeanAvailable bool                          `json:"mean_available"`
	Total         durationaccumulator.Breakdown `json:"total"`
	Mean          durationaccumulator.Breakdown `json:"mean"`
}

type DurationStatsCalculator struct{}

func NewDurationStatsCalculator() *DurationStatsCalculator {
	return &DurationStatsCalculator{}
}

func (dc *DurationStatsCalculator) GetType() string {
	return calculatorType
}

// Calculate returns the total travel time split in days, hours, minutes and seconds
// and the mean travel time split in minutes and seconds. A set without trips has a zero
// total and no mean.
func (dc *DurationStatsCalculator) Calculate(filteredSet *dataset.FilteredSet) (*DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, duration := range filteredSet.Durations() {
		accumulator.UpdateAccumulator(duration)
	}

	durationStats := &DurationStats{
		TotalDuration: accumulator.GetTotalDuration(),
		Total:         durationaccumulator.NewBreakdown(accumulator.GetTotalDuration()),
	}

	meanDuration, err := accumulator.GetAverageDuration()
	if errors.Is(err, durationaccumulator.ErrEmptyAccumulator) {
		log.Debugf("[calculator: %s][city: %s] mean not available: %s", calculatorType, filteredSet.GetFilter().City, err.Error())
		return durationStats, nil
	}

	durationStats.MeanDuration = meanDuration
	durationStats.MeanAvailable = true
	durationStats.Mean = durationaccumulator.NewMinutesBreakdown(meanDuration)
	return durationStats, nil
}

func (dc *DurationStatsCalculator) Run(filteredSet *dataset.FilteredSet) (*statsreport.StatsReport, error) {
	startTime := time.Now()

	durationStats, err := dc.Calculate(filteredSet)
	if err != nil {
		log.Debugf("[calculator: %s][status: ERROR] %s", calculatorType, err.Error())
		return nil, err
	}

	meanTravelTime := "not available, there are no trips"
	if durationStats.MeanAvailable {
		meanTravelTime = durationStats.Mean.String()
	}
	lines := []string{
		"The Total Travel Time is : " + durationStats.Total.String(),
		"The Mean Travel Time is : " + meanTravelTime,
	}

	metadata := entities.NewMetadata(filteredSet.GetFilter(), calculatorType, filteredSet.Len())
	return statsreport.NewStatsReport(metadata, title, lines, durationStats, time.Since(startTime)), nil
}
