package domain

import "github.com/chayanin-p/TBN-AppointmentService/pkg/types"

// Slot is a candidate discrete start time offered to the user,
// derived from a schedule template and a requested duration
type Slot struct {
	StartTime       types.TimeString
	DurationMinutes int
	ActivityType    string
}

// EndTime returns the end of the slot
func (s *Slot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
