package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/dataset/config"
	"bikeshare/dataset/testutil"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

func TestLoadWithoutFiltersReturnsEveryTrip(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	tests := []struct {
		city     string
		expected int
	}{
		{city: "chicago", expected: len(testutil.ChicagoRecords()) - 1},
		{city: "new york city", expected: len(testutil.NewYorkCityRecords()) - 1},
		{city: "washington", expected: len(testutil.WashingtonRecords()) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			filteredSet, err := loader.Load(filter.NoFilter(tt.city))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, filteredSet.Len())
			assert.Equal(t, filter.NoFilter(tt.city), filteredSet.GetFilter())
		})
	}
}

func TestLoadByMonthMatchesDerivedMonth(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	allTrips, err := loader.Load(filter.NoFilter("chicago"))
	require.NoError(t, err)

	for monthIdx, month := range filter.Months {
		t.Run(month, func(t *testing.T) {
			byMonth, err := loader.Load(filter.NewFilter("chicago", month, filter.All))
			require.NoError(t, err)

			var expected []trip.TripData
			for _, tripData := range allTrips.Page(0, allTrips.Len()) {
				if trip.Derive(tripData.StartTime).Month == monthIdx+1 {
					expected = append(expected, tripData)
				}
			}

			assert.Equal(t, len(expected), byMonth.Len())
			assert.Equal(t, expected, byMonth.Page(0, byMonth.Len()))
			for _, derivedMonth := range byMonth.Months() {
				assert.Equal(t, monthIdx+1, derivedMonth)
			}
		})
	}
}

func TestLoadByDay(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	filteredSet, err := loader.Load(filter.NewFilter("chicago", filter.All, "friday"))
	require.NoError(t, err)

	assert.Equal(t, 2, filteredSet.Len())
	assert.Equal(t, []string{"Friday", "Friday"}, filteredSet.DaysOfWeek())
	assert.Equal(t, []int{17, 17}, filteredSet.Hours())
	assert.Equal(t, []int{3, 6}, filteredSet.Months())
}

func TestLoadByMonthAndDay(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	filteredSet, err := loader.Load(filter.NewFilter("chicago", "march", "friday"))
	require.NoError(t, err)

	require.Equal(t, 1, filteredSet.Len())
	assert.Equal(t, []string{"C"}, filteredSet.StartStations())
	assert.Equal(t, []string{"A"}, filteredSet.EndStations())
	assert.Equal(t, []float64{300}, filteredSet.Durations())
}

func TestLoadWithoutMatchingTrips(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	filteredSet, err := loader.Load(filter.NewFilter("chicago", "april", filter.All))
	require.NoError(t, err)

	assert.True(t, filteredSet.IsEmpty())
	assert.Nil(t, filteredSet.Page(0, 5))
}

func TestOptionalColumns(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	chicago, err := loader.Load(filter.NoFilter("chicago"))
	require.NoError(t, err)

	genders, ok := chicago.Genders()
	assert.True(t, ok)
	assert.Equal(t, []string{"Male", "Female", "Male", "Male", "Female"}, genders)

	birthYears, ok := chicago.BirthYears()
	assert.True(t, ok)
	assert.Equal(t, []int{1990, 1985, 1990, 2000}, birthYears)

	washington, err := loader.Load(filter.NoFilter("washington"))
	require.NoError(t, err)

	_, ok = washington.Genders()
	assert.False(t, ok)
	_, ok = washington.BirthYears()
	assert.False(t, ok)
	assert.Equal(t, []string{"Subscriber", "Customer", "Subscriber"}, washington.UserTypes())
}

func TestPage(t *testing.T) {
	loader := NewLoader(testutil.NewDatasetConfig(t))

	filteredSet, err := loader.Load(filter.NoFilter("chicago"))
	require.NoError(t, err)

	firstPage := filteredSet.Page(0, 5)
	require.Len(t, firstPage, 5)
	assert.Equal(t, trip.TripData{
		StartTime:    time.Date(2017, time.January, 1, 9, 7, 57, 0, time.UTC),
		EndTime:      time.Date(2017, time.January, 1, 9, 20, 53, 0, time.UTC),
		Duration:     776,
		StartStation: "A",
		EndStation:   "B",
		UserType:     "Subscriber",
		Gender:       "Male",
		BirthYear:    1990,
	}, firstPage[0])

	secondPage := filteredSet.Page(5, 5)
	require.Len(t, secondPage, 1)
	assert.Empty(t, secondPage[0].BirthYear)
	assert.Equal(t, "Female", secondPage[0].Gender)

	assert.Nil(t, filteredSet.Page(6, 5))
}

func TestLoadErrors(t *testing.T) {
	datasetConfig := testutil.NewDatasetConfig(t)

	badStartTime := testutil.ChicagoRecords()
	badStartTime[2][1] = "02/01/2017 09:30"
	testutil.WriteCSV(t, datasetConfig.DataDir, "bad_start_time.csv", badStartTime)

	badDuration := testutil.WashingtonRecords()
	badDuration[1][3] = "-4"
	testutil.WriteCSV(t, datasetConfig.DataDir, "bad_duration.csv", badDuration)

	missingColumn := testutil.WashingtonRecords()
	for idx := range missingColumn {
		missingColumn[idx] = missingColumn[idx][:6]
	}
	testutil.WriteCSV(t, datasetConfig.DataDir, "missing_column.csv", missingColumn)

	datasetConfig.CityData["bad start time"] = "bad_start_time.csv"
	datasetConfig.CityData["bad duration"] = "bad_duration.csv"
	datasetConfig.CityData["missing column"] = "missing_column.csv"
	datasetConfig.CityData["missing file"] = "missing_file.csv"
	loader := NewLoader(datasetConfig)

	tests := []struct {
		city        string
		expectedErr error
	}{
		{city: "boston", expectedErr: ErrUnknownCity},
		{city: "missing file", expectedErr: ErrReadDataset},
		{city: "missing column", expectedErr: ErrMissingColumn},
		{city: "bad start time", expectedErr: ErrInvalidStartTime},
		{city: "bad duration", expectedErr: ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			filteredSet, err := loader.Load(filter.NoFilter(tt.city))
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, filteredSet)
		})
	}
}

func TestLoadRecords(t *testing.T) {
	datasetConfig := config.DefaultDatasetConfig()
	loader := NewLoader(&datasetConfig)

	filteredSet, err := loader.LoadRecords(testutil.WashingtonRecords(), filter.NewFilter("washington", "april", "monday"))
	require.NoError(t, err)

	assert.Equal(t, 2, filteredSet.Len())
	assert.Equal(t, []float64{400.5, 200}, filteredSet.Durations())
}

func TestBlankStationsAreSkipped(t *testing.T) {
	records := [][]string{
		{"Start Time", "Trip Duration", "Start Station", "End Station", "User Type"},
		{"2017-01-01 09:00:00", "60", "", "B", "Subscriber"},
		{"2017-01-01 10:00:00", "60", "", "", "Subscriber"},
		{"2017-01-01 11:00:00", "60", "A", "C", "Subscriber"},
	}
	datasetConfig := config.DefaultDatasetConfig()
	loader := NewLoader(&datasetConfig)

	filteredSet, err := loader.LoadRecords(records, filter.NoFilter("chicago"))
	require.NoError(t, err)

	assert.Equal(t, 3, filteredSet.Len())
	assert.Equal(t, []string{"A"}, filteredSet.StartStations())
	assert.Equal(t, []string{"B", "C"}, filteredSet.EndStations())
	assert.Equal(t, []tripcounter.Route{{StartStation: "A", EndStation: "C"}}, filteredSet.Routes())
	assert.Len(t, filteredSet.Page(0, 5), 3)
}
