package domain

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// MeetingFormat is how the appointment takes place
type MeetingFormat string

const (
	MeetingOnline MeetingFormat = "Online"
	MeetingOnSite MeetingFormat = "On-site"
)

// Booking represents a confirmed user appointment mirrored to Google Calendar
type Booking struct {
	ID              int64
	UserID          int64
	Title           string
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	Description   *string
	Location      *string
	ActivityType  string // historical name at booking time, never rewritten
	Subject       *string
	MeetingFormat MeetingFormat

	// GoogleCalendarEventID is the external event id, nil when the mirror
	// event no longer exists or was never created
	GoogleCalendarEventID *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// EndTime returns the derived end time of the booking
func (b *Booking) EndTime() (types.TimeString, error) {
	return b.StartTime.AddMinutes(b.DurationMinutes)
}

// TimeRange returns the half-open occupied interval of the booking
func (b *Booking) TimeRange() (types.TimeRange, error) {
	end, err := b.EndTime()
	if err != nil {
		return types.TimeRange{}, err
	}
	return types.TimeRange{Start: b.StartTime, End: end}, nil
}

// UserBookingsFilter narrows a user's booking history query
type UserBookingsFilter struct {
	UserID          int64
	Status          *BookingStatus
	IncludeInactive bool
}

// BookingsOnDateFilter selects bookings occupying slots on a single date
type BookingsOnDateFilter struct {
	Date            time.Time
	ActivityType    *string // nil = all activity types
	IncludeInactive bool
}
