package domain

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// CustomNotification is a user-defined personal alarm delivered via web push
// when the wall-clock time in the notifier timezone matches Time.
// RepeatDays restricts firing to the listed weekdays (0=Sunday..6=Saturday);
// Date restricts firing to a single calendar date. With neither set the
// alarm fires every day.
type CustomNotification struct {
	ID         int64
	UserID     int64
	Title      string
	Time       types.TimeString
	IsEnabled  bool
	RepeatDays []int
	Date       *time.Time
	CreatedAt  time.Time
}

// FiresOn reports whether the alarm should fire on the given date,
// assuming the time-of-day already matched
func (n *CustomNotification) FiresOn(date time.Time) bool {
	if !n.IsEnabled {
		return false
	}
	if n.Date != nil {
		y1, m1, d1 := n.Date.Date()
		y2, m2, d2 := date.Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	}
	if len(n.RepeatDays) > 0 {
		today := int(date.Weekday())
		for _, d := range n.RepeatDays {
			if d == today {
				return true
			}
		}
		return false
	}
	return true
}

// PushSubscription is a user's web-push endpoint registration
type PushSubscription struct {
	UserID    int64
	Endpoint  string
	P256dh    string
	Auth      string
	UpdatedAt time.Time
}
