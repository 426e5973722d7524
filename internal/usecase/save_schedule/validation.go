package save_schedule

import (
	"fmt"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActivityType == "" {
		return fmt.Errorf("%w: activity type is required", ErrInvalidInput)
	}

	if req.Date == nil && len(req.Weekdays) == 0 {
		return fmt.Errorf("%w: weekdays or date is required", ErrInvalidInput)
	}

	if req.Date != nil && len(req.Weekdays) > 0 {
		return fmt.Errorf("%w: weekdays and date are mutually exclusive", ErrInvalidInput)
	}

	for _, wd := range req.Weekdays {
		if !domain.Weekday(wd).IsValid() {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, wd)
		}
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
		if req.EndTime.IsBefore(req.StartTime) {
			return fmt.Errorf("%w: endTime must not be before startTime", ErrInvalidInput)
		}
	}

	return nil
}

// templateRange возвращает интервал создаваемого шаблона
// Пустой конец означает точечный шаблон с нулевой длиной
func templateRange(req *Request) types.TimeRange {
	end := req.EndTime
	if end.IsZero() {
		end = req.StartTime
	}
	return types.TimeRange{Start: req.StartTime, End: end}
}

// findConflict ищет пересечение нового интервала с существующими шаблонами
// этого дня недели
//
// Точечные шаблоны имеют нулевую длину и с полуоткрытыми интервалами
// ни с чем не пересекаются. Разовые шаблоны на разные даты между собой
// не конфликтуют
func findConflict(
	newRange types.TimeRange,
	weekday domain.Weekday,
	date *time.Time,
	replacesID *int64,
	existing []*domain.ScheduleTemplate,
) *ConflictError {
	for _, tpl := range existing {
		if tpl.Weekday != weekday {
			continue
		}
		if tpl.IsSingleTime() {
			continue
		}
		if replacesID != nil && tpl.ID == *replacesID {
			continue
		}
		if tpl.Date != nil && date != nil && !sameDay(*tpl.Date, *date) {
			continue
		}

		if newRange.Overlaps(tpl.TimeRange()) {
			return &ConflictError{
				Weekday:      tpl.Weekday,
				ActivityType: tpl.ActivityType,
				Range:        tpl.TimeRange(),
			}
		}
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
