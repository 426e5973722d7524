package domain

import "time"

// Weekday is a Thai weekday abbreviation as shown throughout the UI
// (จ. = Monday ... อา. = Sunday)
type Weekday string

const (
	WeekdayMonday    Weekday = "จ."
	WeekdayTuesday   Weekday = "อ."
	WeekdayWednesday Weekday = "พ."
	WeekdayThursday  Weekday = "พฤ."
	WeekdayFriday    Weekday = "ศ."
	WeekdaySaturday  Weekday = "ส."
	WeekdaySunday    Weekday = "อา."
)

// WeekdayOrder is the display order used by the admin schedule list
var WeekdayOrder = []Weekday{
	WeekdayMonday,
	WeekdayTuesday,
	WeekdayWednesday,
	WeekdayThursday,
	WeekdayFriday,
	WeekdaySaturday,
	WeekdaySunday,
}

var weekdayFromTime = map[time.Weekday]Weekday{
	time.Monday:    WeekdayMonday,
	time.Tuesday:   WeekdayTuesday,
	time.Wednesday: WeekdayWednesday,
	time.Thursday:  WeekdayThursday,
	time.Friday:    WeekdayFriday,
	time.Saturday:  WeekdaySaturday,
	time.Sunday:    WeekdaySunday,
}

// WeekdayOf returns the Thai abbreviation for the weekday of the given date
func WeekdayOf(date time.Time) Weekday {
	return weekdayFromTime[date.Weekday()]
}

// IsValid reports whether w is one of the seven known abbreviations
func (w Weekday) IsValid() bool {
	for _, d := range WeekdayOrder {
		if d == w {
			return true
		}
	}
	return false
}

// OrderIndex returns the position of w in WeekdayOrder (Monday first)
// Unknown values sort last
func (w Weekday) OrderIndex() int {
	for i, d := range WeekdayOrder {
		if d == w {
			return i
		}
	}
	return len(WeekdayOrder)
}

// String returns the Thai abbreviation
func (w Weekday) String() string {
	return string(w)
}
