package shift

import (
	"math"
	"time"
)

// Local-time boundaries for the day shift. A shift is typed by its START
// time only, since a shift may run across a boundary.
const (
	dayStartHour   = 5
	nightStartHour = 17
)

// TypeForStart returns day for starts in [05:00, 17:00) and night otherwise.
func TypeForStart(start time.Time) string {
	h := start.Hour()
	if h >= dayStartHour && h < nightStartHour {
		return TypeDay
	}
	return TypeNight
}

// BusinessDateForStart resolves the calendar date the shift's cash belongs
// to. A night shift starting at or after 17:00 settles against the next
// day's register; a night shift starting before 05:00 is the tail of the
// current date and settles against it.
func BusinessDateForStart(start time.Time) time.Time {
	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	if TypeForStart(start) == TypeNight && start.Hour() >= nightStartHour {
		return date.AddDate(0, 0, 1)
	}
	return date
}

// RoundHours converts a duration to hours rounded to two decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
