package durationaccumulator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	hundredthsPerSecond = 100
	secondsPerMinute    = 60
	minutesPerHour      = 60
	hoursPerDay         = 24
)

// Breakdown a duration split in days, hours, minutes and seconds.
// Seconds keeps the fractional part of the duration, rounded to hundredths.
type Breakdown struct {
	Days    int64   `json:"days"`
	Hours   int64   `json:"hours"`
	Minutes int64   `json:"minutes"`
	Seconds float64 `json:"seconds"`
}

// NewBreakdown splits a non-negative amount of seconds in days, hours, minutes and seconds
func NewBreakdown(totalSeconds float64) Breakdown {
	minutesBreakdown := NewMinutesBreakdown(totalSeconds)
	hours, minutes := divmod(minutesBreakdown.Minutes, minutesPerHour)
	days, hours := divmod(hours, hoursPerDay)

	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: minutesBreakdown.Seconds,
	}
}

// NewMinutesBreakdown splits a non-negative amount of seconds in minutes and seconds only.
// The amount is rounded to hundredths of a second before the split, so Seconds is always below 60.
func NewMinutesBreakdown(totalSeconds float64) Breakdown {
	hundredths := int64(math.Round(totalSeconds * hundredthsPerSecond))
	minutes, seconds := divmod(hundredths, secondsPerMinute*hundredthsPerSecond)

	return Breakdown{
		Minutes: minutes,
		Seconds: float64(seconds) / hundredthsPerSecond,
	}
}

// TotalSeconds rebuilds the amount of seconds represented by the breakdown
func (b Breakdown) TotalSeconds() float64 {
	wholeSeconds := ((b.Days*hoursPerDay+b.Hours)*minutesPerHour + b.Minutes) * secondsPerMinute
	return float64(wholeSeconds) + b.Seconds
}

// String returns a human-readable breakdown omitting the units with value zero,
// e.g "1 day, 1 hour, 1 second"
func (b Breakdown) String() string {
	var parts []string
	parts = appendUnit(parts, float64(b.Days), "day")
	parts = appendUnit(parts, float64(b.Hours), "hour")
	parts = appendUnit(parts, float64(b.Minutes), "minute")
	parts = appendUnit(parts, b.Seconds, "second")

	if len(parts) == 0 {
		return "0 seconds"
	}
	return strings.Join(parts, ", ")
}

func appendUnit(parts []string, value float64, unit string) []string {
	if value == 0 {
		return parts
	}

	if value != 1 {
		unit += "s"
	}
	return append(parts, fmt.Sprintf("%s %s", strconv.FormatFloat(value, 'f', -1, 64), unit))
}

func divmod(value int64, divisor int64) (int64, int64) {
	return value / divisor, value % divisor
}
