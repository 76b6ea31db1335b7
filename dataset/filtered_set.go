package dataset

import (
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"

	"bikeshare/dataset/config"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// FilteredSet read-only view of the trips of a city that match a Filter.
// It is recreated on every load and never modified by the statistics calculators.
type FilteredSet struct {
	frame      dataframe.DataFrame
	filter     filter.Filter
	columns    config.DatasetColumns
	timeLayout string
}

func newFilteredSet(frame dataframe.DataFrame, dataFilter filter.Filter, columns config.DatasetColumns, timeLayout string) *FilteredSet {
	return &FilteredSet{
		frame:      frame,
		filter:     dataFilter,
		columns:    columns,
		timeLayout: timeLayout,
	}
}

func (fs *FilteredSet) GetFilter() filter.Filter {
	return fs.filter
}

// Len returns the amount of trips in the set
func (fs *FilteredSet) Len() int {
	return fs.frame.Nrow()
}

func (fs *FilteredSet) IsEmpty() bool {
	return fs.Len() == 0
}

func (fs *FilteredSet) HasColumn(column string) bool {
	return utils.ContainsString(column, fs.frame.Names())
}

func (fs *FilteredSet) HasGender() bool {
	return fs.HasColumn(fs.columns.Gender)
}

func (fs *FilteredSet) HasBirthYear() bool {
	return fs.HasColumn(fs.columns.BirthYear)
}

// Months returns the derived month of each trip
func (fs *FilteredSet) Months() []int {
	return fs.intColumn(monthColumn)
}

// DaysOfWeek returns the derived day of week of each trip, e.g Monday
func (fs *FilteredSet) DaysOfWeek() []string {
	return fs.frame.Col(dayOfWeekColumn).Records()
}

// Hours returns the derived start hour of each trip
func (fs *FilteredSet) Hours() []int {
	return fs.intColumn(hourColumn)
}

// Durations returns the duration in seconds of each trip
func (fs *FilteredSet) Durations() []float64 {
	return fs.frame.Col(fs.columns.Duration).Float()
}

// StartStations returns the start station of each trip, skipping empty values
func (fs *FilteredSet) StartStations() []string {
	return nonEmpty(fs.frame.Col(fs.columns.StartStation).Records())
}

// EndStations returns the end station of each trip, skipping empty values
func (fs *FilteredSet) EndStations() []string {
	return nonEmpty(fs.frame.Col(fs.columns.EndStation).Records())
}

// Routes returns the (start station, end station) of each trip.
// Trips with an empty start or end station are skipped.
func (fs *FilteredSet) Routes() []tripcounter.Route {
	startStations := fs.frame.Col(fs.columns.StartStation).Records()
	endStations := fs.frame.Col(fs.columns.EndStation).Records()

	routes := make([]tripcounter.Route, 0, len(startStations))
	for idx := range startStations {
		if isEmpty(startStations[idx]) || isEmpty(endStations[idx]) {
			continue
		}
		routes = append(routes, tripcounter.Route{StartStation: startStations[idx], EndStation: endStations[idx]})
	}
	return routes
}

// UserTypes returns the user type of each trip, skipping empty values
func (fs *FilteredSet) UserTypes() []string {
	return nonEmpty(fs.frame.Col(fs.columns.UserType).Records())
}

// Genders returns the known genders of the trips. ok is false if the dataset does not have a gender column.
func (fs *FilteredSet) Genders() (genders []string, ok bool) {
	if !fs.HasGender() {
		return nil, false
	}
	return nonEmpty(fs.frame.Col(fs.columns.Gender).Records()), true
}

// BirthYears returns the known birth years of the users. ok is false if the dataset does not have a birth year column.
func (fs *FilteredSet) BirthYears() (birthYears []int, ok bool) {
	if !fs.HasBirthYear() {
		return nil, false
	}

	birthYears = []int{}
	for _, birthYear := range fs.frame.Col(fs.columns.BirthYear).Float() {
		if math.IsNaN(birthYear) {
			continue
		}
		birthYears = append(birthYears, int(birthYear))
	}
	return birthYears, true
}

// Page returns up to limit trips starting at offset, in the order of the source file
func (fs *FilteredSet) Page(offset int, limit int) []trip.TripData {
	if offset < 0 || limit <= 0 || offset >= fs.Len() {
		return nil
	}

	end := min(offset+limit, fs.Len())
	indexes := make([]int, 0, end-offset)
	for idx := offset; idx < end; idx++ {
		indexes = append(indexes, idx)
	}

	page := newFilteredSet(fs.frame.Subset(indexes), fs.filter, fs.columns, fs.timeLayout)
	startTimes := page.frame.Col(fs.columns.StartTime).Records()
	durations := page.Durations()
	startStations := page.frame.Col(fs.columns.StartStation).Records()
	endStations := page.frame.Col(fs.columns.EndStation).Records()
	userTypes := page.frame.Col(fs.columns.UserType).Records()
	endTimes := page.optionalRecords(fs.columns.EndTime)
	genders := page.optionalRecords(fs.columns.Gender)
	birthYears := page.optionalFloats(fs.columns.BirthYear)

	trips := make([]trip.TripData, 0, len(indexes))
	for idx := range indexes {
		startTime, _ := time.Parse(fs.timeLayout, startTimes[idx])
		tripData := trip.TripData{
			StartTime:    startTime,
			Duration:     durations[idx],
			StartStation: startStations[idx],
			EndStation:   endStations[idx],
			UserType:     userTypes[idx],
		}

		if endTimes != nil {
			tripData.EndTime, _ = time.Parse(fs.timeLayout, endTimes[idx])
		}
		if genders != nil && !isEmpty(genders[idx]) {
			tripData.Gender = genders[idx]
		}
		if birthYears != nil && !math.IsNaN(birthYears[idx]) {
			tripData.BirthYear = int(birthYears[idx])
		}
		trips = append(trips, tripData)
	}

	return trips
}

func (fs *FilteredSet) intColumn(column string) []int {
	values, err := fs.frame.Col(column).Int()
	if err != nil {
		// derived columns are built from ints, they cannot hold NaN values
		panic("[FilteredSet] invalid derived column " + column + ": " + err.Error())
	}
	return values
}

func (fs *FilteredSet) optionalRecords(column string) []string {
	if column == "" || !fs.HasColumn(column) {
		return nil
	}
	return fs.frame.Col(column).Records()
}

func (fs *FilteredSet) optionalFloats(column string) []float64 {
	if column == "" || !fs.HasColumn(column) {
		return nil
	}
	return fs.frame.Col(column).Float()
}

func nonEmpty(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if isEmpty(value) {
			continue
		}
		result = append(result, value)
	}
	return result
}
