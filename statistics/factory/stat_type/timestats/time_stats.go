package timestats

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities"
	statsErrors "bikeshare/statistics/factory/stat_type/errors"
)

const (
	calculatorType = "time-stats"
	title          = "Calculating The Most Frequent Times of Travel..."
)

// TimeStats most frequent times of travel
type TimeStats struct {
	MostCommonMonth     int    `json:"most_common_month"`
	MostCommonMonthName string `json:"most_common_month_name"`
	MostCommonDay       string `json:"most_common_day"`
	MostCommonHour      int    `json:"most_common_hour"`
}

type TimeStatsCalculator struct{}

func NewTimeStatsCalculator() *TimeStatsCalculator {
	return &TimeStatsCalculator{}
}

func (tc *TimeStatsCalculator) GetType() string {
	return calculatorType
}

// Calculate returns the mode of the derived month, day of week and hour of the trips
func (tc *TimeStatsCalculator) Calculate(filteredSet *dataset.FilteredSet) (*TimeStats, error) {
	if filteredSet.IsEmpty() {
		return nil, statsErrors.ErrEmptyFilteredSet
	}

	month, _, _ := modecounter.NewModeCounterWithValues(filteredSet.Months()).Mode()
	day, _, _ := modecounter.NewModeCounterWithValues(filteredSet.DaysOfWeek()).Mode()
	hour, _, _ := modecounter.NewModeCounterWithValues(filteredSet.Hours()).Mode()

	return &TimeStats{
		MostCommonMonth:     month,
		MostCommonMonthName: time.Month(month).String(),
		MostCommonDay:       day,
		MostCommonHour:      hour,
	}, nil
}

func (tc *TimeStatsCalculator) Run(filteredSet *dataset.FilteredSet) (*statsreport.StatsReport, error) {
	startTime := time.Now()

	timeStats, err := tc.Calculate(filteredSet)
	if err != nil {
		log.Debugf("[calculator: %s][status: ERROR] %s", calculatorType, err.Error())
		return nil, err
	}

	mostCommon := "The most common %s is: %s"
	lines := []string{
		fmt.Sprintf(mostCommon, "month", timeStats.MostCommonMonthName),
		fmt.Sprintf(mostCommon, "day of week", timeStats.MostCommonDay),
		fmt.Sprintf(mostCommon, "hour", fmt.Sprintf("%02d", timeStats.MostCommonHour)),
	}

	metadata := entities.NewMetadata(filteredSet.GetFilter(), calculatorType, filteredSet.Len())
	return statsreport.NewStatsReport(metadata, title, lines, timeStats, time.Since(startTime)), nil
}
