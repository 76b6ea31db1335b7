package factory

import (
	"fmt"

	"bikeshare/dataset"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities/station"
	"bikeshare/statistics/factory/stat_type/durationstats"
	"bikeshare/statistics/factory/stat_type/stationstats"
	"bikeshare/statistics/factory/stat_type/timestats"
	"bikeshare/statistics/factory/stat_type/userstats"
)

const (
	TimeStats     = "time-stats"
	StationStats  = "station-stats"
	DurationStats = "duration-stats"
	UserStats     = "user-stats"
)

// StatsTypes every statistics calculator, in the order they are shown
var StatsTypes = []string{TimeStats, StationStats, DurationStats, UserStats}

// IStatsCalculator computes one group of statistics over a filtered set without modifying it
type IStatsCalculator interface {
	GetType() string
	Run(filteredSet *dataset.FilteredSet) (*statsreport.StatsReport, error)
}

// NewStatsCalculator initialize a statistics calculator of some type.
// Possible types are: time-stats, station-stats, duration-stats, user-stats.
// catalogs is only used by station-stats and may be nil.
func NewStatsCalculator(statsType string, catalogs map[string]station.Catalog) (IStatsCalculator, error) {
	switch statsType {
	case TimeStats:
		return timestats.NewTimeStatsCalculator(), nil
	case StationStats:
		return stationstats.NewStationStatsCalculator(catalogs), nil
	case DurationStats:
		return durationstats.NewDurationStatsCalculator(), nil
	case UserStats:
		return userstats.NewUserStatsCalculator(), nil
	}

	return nil, fmt.Errorf("[method: NewStatsCalculator][status: error] Invalid statistics type %s", statsType)
}

// NewStatsCalculators initialize the calculators of statsTypes, keeping their order
func NewStatsCalculators(statsTypes []string, catalogs map[string]station.Catalog) ([]IStatsCalculator, error) {
	calculators := make([]IStatsCalculator, 0, len(statsTypes))
	for _, statsType := range statsTypes {
		calculator, err := NewStatsCalculator(statsType, catalogs)
		if err != nil {
			return nil, err
		}
		calculators = append(calculators, calculator)
	}
	return calculators, nil
}
