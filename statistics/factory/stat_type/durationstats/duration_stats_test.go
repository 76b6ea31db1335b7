package durationstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset"
	"bikeshare/dataset/testutil"
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/filter"
)

func TestCalculate(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NoFilter("chicago"))
	require.NoError(t, err)

	durationStats, err := NewDurationStatsCalculator().Calculate(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, 94857.0, durationStats.TotalDuration)
	assert.Equal(t, 15809.5, durationStats.MeanDuration)
	assert.Equal(t, durationaccumulator.Breakdown{Days: 1, Hours: 2, Minutes: 20, Seconds: 57}, durationStats.Total)
	assert.Equal(t, durationaccumulator.Breakdown{Minutes: 263, Seconds: 29.5}, durationStats.Mean)
	assert.Equal(t, durationStats.TotalDuration, durationStats.Total.TotalSeconds())
	assert.Equal(t, durationStats.MeanDuration, durationStats.Mean.TotalSeconds())
}

func TestRun(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NewFilter("washington", "april", filter.All))
	require.NoError(t, err)

	report, err := NewDurationStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"The Total Travel Time is : 10 minutes, 0.5 seconds",
		"The Mean Travel Time is : 5 minutes, 0.25 seconds",
	}, report.Lines)
	assert.Equal(t, "duration-stats", report.GetType())
}

func TestCalculateOnEmptySet(t *testing.T) {
	loader := dataset.NewLoader(testutil.NewDatasetConfig(t))
	filteredSet, err := loader.Load(filter.NewFilter("chicago", "may", filter.All))
	require.NoError(t, err)
	require.True(t, filteredSet.IsEmpty())

	report, err := NewDurationStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	durationStats := report.Result.(*DurationStats)
	assert.Zero(t, durationStats.TotalDuration)
	assert.False(t, durationStats.MeanAvailable)
	assert.Equal(t, []string{
		"The Total Travel Time is : 0 seconds",
		"The Mean Travel Time is : not available, there are no trips",
	}, report.Lines)
}

func TestMeanIsRoundedBeforeTheSplit(t *testing.T) {
	records := [][]string{
		{"Start Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-01-01 09:00:00", "779.999", "A", "B", "Subscriber"},
	}
	datasetConfig := testutil.NewDatasetConfig(t)
	filteredSet, err := dataset.NewLoader(datasetConfig).LoadRecords(records, filter.NoFilter("chicago"))
	require.NoError(t, err)

	report, err := NewDurationStatsCalculator().Run(filteredSet)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"The Total Travel Time is : 13 minutes",
		"The Mean Travel Time is : 13 minutes",
	}, report.Lines)
}
