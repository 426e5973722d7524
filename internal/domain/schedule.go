package domain

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// ScheduleTemplate is an admin-defined time window during which an activity
// type may be booked. Weekly templates recur on Weekday; one-off templates
// additionally carry a specific Date overriding the weekly recurrence.
// A template with StartTime == EndTime offers a single discrete start time.
type ScheduleTemplate struct {
	ID           int64
	ActivityType string
	Weekday      Weekday
	StartTime    types.TimeString
	EndTime      types.TimeString
	Date         *time.Time // nil = weekly recurring
	CreatedDate  time.Time
}

// TimeRange returns the bookable window of the template
func (t *ScheduleTemplate) TimeRange() types.TimeRange {
	return types.TimeRange{Start: t.StartTime, End: t.EndTime}
}

// IsSingleTime returns true for templates offering exactly one start time
func (t *ScheduleTemplate) IsSingleTime() bool {
	return t.StartTime == t.EndTime
}

// AppliesTo reports whether the template offers slots on the given date
func (t *ScheduleTemplate) AppliesTo(date time.Time) bool {
	if t.Date != nil {
		y1, m1, d1 := t.Date.Date()
		y2, m2, d2 := date.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	return t.Weekday == WeekdayOf(date)
}

// ScheduleFilter narrows template queries
type ScheduleFilter struct {
	ActivityType *string  // nil = all types
	Weekday      *Weekday // nil = all weekdays
}
