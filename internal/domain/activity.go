package domain

import "time"

// ActivityType is a named, colored category of bookable activity
// (e.g. "ประชุม" = meeting). Schedules reference it by name; renaming
// cascades to templates but bookings keep the historical name.
type ActivityType struct {
	ID        int64
	Name      string
	Color     string // hex, e.g. "#2563eb"
	CreatedAt time.Time
	UpdatedAt time.Time
}
