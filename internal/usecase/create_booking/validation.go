package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	if len([]rune(req.Title)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title is too long", ErrInvalidInput)
	}

	if req.ActivityType == "" {
		return fmt.Errorf("%w: activity type is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.MeetingFormat != "" &&
		req.MeetingFormat != string(domain.MeetingOnline) &&
		req.MeetingFormat != string(domain.MeetingOnSite) {
		return fmt.Errorf("%w: unknown meeting format %q", ErrInvalidInput, req.MeetingFormat)
	}

	return nil
}

// resolveDurationMinutes вычисляет длительность записи в минутах
// Приоритет: произвольная длительность, затем пресет, затем значение по умолчанию
func resolveDurationMinutes(req *Request) (int, error) {
	var minutes int
	var err error

	switch {
	case req.CustomDurationValue != "":
		minutes, err = domain.ParseCustomDuration(req.CustomDurationValue, domain.DurationUnit(req.CustomDurationUnit))
	case req.Duration != "":
		minutes, err = domain.ParseDuration(req.Duration)
	default:
		return domain.DefaultDurationMinutes, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	if err := domain.ValidateBookingDuration(minutes); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
	}

	return minutes, nil
}

// validateNotPast проверяет, что запрошенное время еще не прошло
// Сравнение идет в часовом поясе сервиса
func (uc *UseCase) validateNotPast(date time.Time, startTime types.TimeString) error {
	now := uc.timeProvider.Now().In(uc.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	switch {
	case day.Before(today):
		return fmt.Errorf("%w: date %s is in the past", ErrPastTimeSlot, date.Format(domain.DateFormat))
	case day.Equal(today) && !startTime.IsAfter(types.NewTimeString(now)):
		return fmt.Errorf("%w: time %s is in the past", ErrPastTimeSlot, startTime)
	}

	return nil
}

// validateSlotFits проверяет, что запись целиком помещается в сутки
func validateSlotFits(startTime types.TimeString, durationMinutes int) error {
	if _, err := startTime.AddMinutes(durationMinutes); err != nil {
		if errors.Is(err, types.ErrTimeOverflow) {
			return fmt.Errorf("%w: booking does not fit into the day", ErrInvalidTimeSlot)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// hasOverlap проверяет пересечение запрошенного интервала с активными записями
// Интервалы полуоткрытые: граничащие записи пересечением не считаются
func hasOverlap(startTime types.TimeString, durationMinutes int, bookings []*domain.Booking) bool {
	slotEnd, err := startTime.AddMinutes(durationMinutes)
	if err != nil {
		return true
	}

	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}

		bookingStart := booking.StartTime
		bookingEnd, err := booking.StartTime.AddMinutes(booking.DurationMinutes)
		if err != nil {
			continue
		}

		if bookingStart.IsBefore(slotEnd) && bookingEnd.IsAfter(startTime) {
			return true
		}
	}

	return false
}
