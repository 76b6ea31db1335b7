package filter

import (
	"fmt"

	"bikeshare/utils"
)

// All is the selector value that disables a month or day filter
const All = "all"

var (
	// Months contains the months available in the datasets, in calendar order
	Months = []string{"january", "february", "march", "april", "may", "june"}

	// Days contains the days of the week, starting on sunday
	Days = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
)

// Filter contains the parameters used to select trips from a city dataset
// + City: key of the city dataset to analyze
// + Month: month name or "all"
// + Day: day of week name or "all"
type Filter struct {
	City  string `json:"city" validate:"required"`
	Month string `json:"month" validate:"required,oneof=all january february march april may june"`
	Day   string `json:"day" validate:"required,oneof=all sunday monday tuesday wednesday thursday friday saturday"`
}

func NewFilter(city string, month string, day string) Filter {
	return Filter{
		City:  city,
		Month: month,
		Day:   day,
	}
}

// NoFilter returns a Filter that keeps every trip of the city
func NoFilter(city string) Filter {
	return NewFilter(city, All, All)
}

func (f Filter) FiltersByMonth() bool {
	return f.Month != All
}

func (f Filter) FiltersByDay() bool {
	return f.Day != All
}

// MonthIndex returns the 1-based month number of the selected month, e.g january -> 1.
// Returns 0 when there is no month filter.
func (f Filter) MonthIndex() int {
	return utils.IndexOfString(f.Month, Months) + 1
}

// DayName returns the day of week as time.Weekday prints it, e.g monday -> Monday
func (f Filter) DayName() string {
	return utils.Title(f.Day)
}

func (f Filter) String() string {
	return fmt.Sprintf("city: %s | month: %s | day: %s", f.City, f.Month, f.Day)
}
