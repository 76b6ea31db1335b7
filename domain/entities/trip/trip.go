package trip

import (
	"fmt"
	"strings"
	"time"
)

// TripData struct that contains the data of a single trip
// + StartTime: date and time in which the trip begins
// + EndTime: date and time in which the trip ends. Zero if the dataset does not have it
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of user, e.g Subscriber or Customer
// + Gender: gender of the user. Empty if unknown or if the dataset does not have it
// + BirthYear: birth year of the user. Zero if unknown or if the dataset does not have it
type TripData struct {
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Duration     float64   `json:"duration"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`
	BirthYear    int       `json:"birth_year,omitempty"`
}

// DerivedFields calendar fields computed from the start time of a trip
type DerivedFields struct {
	Month     int
	DayOfWeek string
	Hour      int
}

// Derive returns the month, day of week and hour of startTime
func Derive(startTime time.Time) DerivedFields {
	return DerivedFields{
		Month:     int(startTime.Month()),
		DayOfWeek: startTime.Weekday().String(),
		Hour:      startTime.Hour(),
	}
}

func (td TripData) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Start Time: %s | ", td.StartTime.Format(time.DateTime)))
	if !td.EndTime.IsZero() {
		sb.WriteString(fmt.Sprintf("End Time: %s | ", td.EndTime.Format(time.DateTime)))
	}
	sb.WriteString(fmt.Sprintf("Trip Duration: %v | Start Station: %s | End Station: %s | User Type: %s",
		td.Duration, td.StartStation, td.EndStation, td.UserType))
	if td.Gender != "" {
		sb.WriteString(" | Gender: " + td.Gender)
	}
	if td.BirthYear != 0 {
		sb.WriteString(fmt.Sprintf(" | Birth Year: %d", td.BirthYear))
	}
	return sb.String()
}
