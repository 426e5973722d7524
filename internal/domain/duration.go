package domain

import (
	"errors"
	"strconv"
	"strings"

	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// DurationUnit is a Thai duration unit as entered in the booking form
type DurationUnit string

const (
	UnitMinutes DurationUnit = "นาที"
	UnitHours   DurationUnit = "ชั่วโมง"
)

var (
	// ErrInvalidDuration is returned for empty or non-numeric duration input.
	// Callers must surface a validation error instead of booking a
	// zero-length slot
	ErrInvalidDuration = errors.New("invalid duration value")

	// ErrDurationOutOfRange is returned when a parsed duration falls outside
	// the allowed booking window
	ErrDurationOutOfRange = errors.New("duration out of allowed range")
)

// ParseDuration normalizes a human-entered duration string into integer
// minutes. Accepts preset forms like "30 นาที", "1 ชั่วโมง" and
// "1.5 ชั่วโมง" as well as a bare number (treated as minutes)
func ParseDuration(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidDuration
	}

	unit := UnitMinutes
	numPart := s
	switch {
	case strings.HasSuffix(s, string(UnitHours)):
		unit = UnitHours
		numPart = strings.TrimSpace(strings.TrimSuffix(s, string(UnitHours)))
	case strings.HasSuffix(s, string(UnitMinutes)):
		numPart = strings.TrimSpace(strings.TrimSuffix(s, string(UnitMinutes)))
	}

	return ParseCustomDuration(numPart, unit)
}

// ParseCustomDuration converts a free-text numeric value plus unit into
// integer minutes. Empty or non-numeric input yields 0 and ErrInvalidDuration
func ParseCustomDuration(value string, unit DurationUnit) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, ErrInvalidDuration
	}

	num, err := strconv.ParseFloat(value, 64)
	if err != nil || num < 0 {
		return 0, ErrInvalidDuration
	}

	var minutes int
	switch unit {
	case UnitHours:
		minutes = int(num * 60)
	case UnitMinutes:
		minutes = int(num)
	default:
		return 0, ErrInvalidDuration
	}

	if minutes == 0 {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}

// ValidateBookingDuration checks a parsed duration against business limits
func ValidateBookingDuration(minutes int) error {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return ErrDurationOutOfRange
	}
	return nil
}

// EndTimeFor computes the HH:MM end time for a start time and duration
func EndTimeFor(start types.TimeString, minutes int) (types.TimeString, error) {
	return start.AddMinutes(minutes)
}
