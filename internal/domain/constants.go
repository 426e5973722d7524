package domain

// Default values
const (
	// DefaultDurationMinutes substitutes an unset duration during slot
	// generation only; it is never written to a booking
	DefaultDurationMinutes = 60

	DefaultActivityColor = "#2563eb"
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours

	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxLocationLength    = 300
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists statuses that occupy a slot
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
}

// InactiveStatuses lists statuses excluded from availability counting
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}
