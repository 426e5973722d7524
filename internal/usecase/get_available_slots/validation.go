package get_available_slots

import (
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityType == "" {
		return fmt.Errorf("%w: activity type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.DurationMinutes != 0 {
		if err := domain.ValidateBookingDuration(req.DurationMinutes); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		}
	}

	return nil
}
