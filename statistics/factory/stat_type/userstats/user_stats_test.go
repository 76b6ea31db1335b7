package userstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/dataset/testutil"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/filter"
)

func TestCalculateWithDemographics(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NoFilter("chicago"))
	require.NoError(t, err)

	userStats, err := NewUserStatsCalculator().Calculate(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, []modecounter.Frequency[string]{
		{Value: "Subscriber", Count: 4},
		{Value: "Customer", Count: 2},
	}, userStats.UserTypes)
	assert.True(t, userStats.GenderAvailable)
	assert.Equal(t, []modecounter.Frequency[string]{
		{Value: "Male", Count: 3},
		{Value: "Female", Count: 2},
	}, userStats.Genders)
	assert.True(t, userStats.BirthYearAvailable)
	assert.Equal(t, &BirthYearStats{Earliest: 1985, MostRecent: 2000, MostCommon: 1990}, userStats.BirthYears)
}

func TestRunWithoutDemographics(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NoFilter("washington"))
	require.NoError(t, err)

	report, err := NewUserStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	userStats := report.Result.(*UserStats)
	assert.False(t, userStats.GenderAvailable)
	assert.Nil(t, userStats.Genders)
	assert.False(t, userStats.BirthYearAvailable)
	assert.Nil(t, userStats.BirthYears)
	assert.Equal(t, []string{
		"Counts of user types:",
		"  Subscriber: 2",
		"  Customer: 1",
		"Sorry, the washington data does not have a 'Gender' column",
		"Sorry, the washington data does not have a 'Birth Year' column",
	}, report.Lines)
}

func TestRunWithBlankDemographics(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NewFilter("new york city", "june", filter.All))
	require.NoError(t, err)

	report, err := NewUserStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Counts of user types:",
		"  Customer: 1",
		"There are no genders for the selected trips",
		"There are no birth years for the selected trips",
	}, report.Lines)

	userStats := report.Result.(*UserStats)
	assert.True(t, userStats.GenderAvailable)
	assert.Empty(t, userStats.Genders)
}

func TestRunWithBlankUserTypes(t *testing.T) {
	records := [][]string{
		{"Start Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-01-01 09:00:00", "60", "A", "B", ""},
	}
	filteredSet, err := dataset.NewLoader(testutil.NewDatasetConfig(t)).LoadRecords(records, filter.NoFilter("washington"))
	require.NoError(t, err)

	report, err := NewUserStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"There are no user types for the selected trips",
		"Sorry, the washington data does not have a 'Gender' column",
		"Sorry, the washington data does not have a 'Birth Year' column",
	}, report.Lines)
}
