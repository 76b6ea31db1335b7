package userstats

import (
	"fmt"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/dataset"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/statsreport"
	"bikeshare/domain/entities"
	statsErrors "bikeshare/statistics/factory/stat_type/errors"
)

const (
	calculatorType = "user-stats"
	title          = "Calculating User Stats..."
)

// BirthYearStats earliest, most recent and most common year of birth
type BirthYearStats struct {
	Earliest   int `json:"earliest"`
	MostRecent int `json:"most_recent"`
	MostCommon int `json:"most_common"`
}

// UserStats user demographics of the trips.
// Genders and BirthYears are nil when the dataset does not have the column.
// BirthYears is also nil when every birth year of the filtered set is blank.
type UserStats struct {
	UserTypes          []modecounter.Frequency[string] `json:"user_types"`
	Genders            []modecounter.Frequency[string] `json:"genders,omitempty"`
	BirthYears         *BirthYearStats                 `json:"birth_years,omitempty"`
	GenderAvailable    bool                            `json:"gender_available"`
	BirthYearAvailable bool                            `json:"birth_year_available"`
}

type UserStatsCalculator struct{}

func NewUserStatsCalculator() *UserStatsCalculator {
	return &UserStatsCalculator{}
}

func (uc *UserStatsCalculator) GetType() string {
	return calculatorType
}

// Calculate returns the amount of trips by user type and by gender, and the earliest,
// most recent and most common birth year. Gender and birth year are only computed
// when the dataset of the city has those columns.
func (uc *UserStatsCalculator) Calculate(filteredSet *dataset.FilteredSet) (*UserStats, error) {
	if filteredSet.IsEmpty() {
		return nil, statsErrors.ErrEmptyFilteredSet
	}

	userStats := &UserStats{
		UserTypes: modecounter.NewModeCounterWithValues(filteredSet.UserTypes()).Frequencies(),
	}

	if genders, ok := filteredSet.Genders(); ok {
		userStats.GenderAvailable = true
		userStats.Genders = modecounter.NewModeCounterWithValues(genders).Frequencies()
	}

	if birthYears, ok := filteredSet.BirthYears(); ok {
		userStats.BirthYearAvailable = true
		userStats.BirthYears = getBirthYearStats(birthYears)
	}

	return userStats, nil
}

func getBirthYearStats(birthYears []int) *BirthYearStats {
	if len(birthYears) == 0 {
		return nil
	}

	mostCommon, _, _ := modecounter.NewModeCounterWithValues(birthYears).Mode()
	return &BirthYearStats{
		Earliest:   slices.Min(birthYears),
		MostRecent: slices.Max(birthYears),
		MostCommon: mostCommon,
	}
}

func (uc *UserStatsCalculator) Run(filteredSet *dataset.FilteredSet) (*statsreport.StatsReport, error) {
	startTime := time.Now()

	userStats, err := uc.Calculate(filteredSet)
	if err != nil {
		log.Debugf("[calculator: %s][status: ERROR] %s", calculatorType, err.Error())
		return nil, err
	}

	city := filteredSet.GetFilter().City
	notAvailable := "Sorry, the %s data does not have a '%s' column"

	noValues := "There are no %s for the selected trips"

	var lines []string
	if len(userStats.UserTypes) > 0 {
		lines = append(lines, "Counts of user types:")
		lines = append(lines, frequencyLines(userStats.UserTypes)...)
	} else {
		lines = append(lines, fmt.Sprintf(noValues, "user types"))
	}

	switch {
	case !userStats.GenderAvailable:
		lines = append(lines, fmt.Sprintf(notAvailable, city, "Gender"))
	case len(userStats.Genders) == 0:
		lines = append(lines, fmt.Sprintf(noValues, "genders"))
	default:
		lines = append(lines, "Counts of gender:")
		lines = append(lines, frequencyLines(userStats.Genders)...)
	}

	switch {
	case !userStats.BirthYearAvailable:
		lines = append(lines, fmt.Sprintf(notAvailable, city, "Birth Year"))
	case userStats.BirthYears == nil:
		lines = append(lines, fmt.Sprintf(noValues, "birth years"))
	default:
		lines = append(lines,
			fmt.Sprintf("The Earliest Year of Birth : %v", userStats.BirthYears.Earliest),
			fmt.Sprintf("The Most Recent Year of Birth : %v", userStats.BirthYears.MostRecent),
			fmt.Sprintf("The Most Common Year of Birth : %v", userStats.BirthYears.MostCommon),
		)
	}

	metadata := entities.NewMetadata(filteredSet.GetFilter(), calculatorType, filteredSet.Len())
	return statsreport.NewStatsReport(metadata, title, lines, userStats, time.Since(startTime)), nil
}

func frequencyLines(frequencies []modecounter.Frequency[string]) []string {
	lines := make([]string, 0, len(frequencies))
	for _, frequency := range frequencies {
		lines = append(lines, fmt.Sprintf("  %s: %v", frequency.Value, frequency.Count))
	}
	return lines
}
