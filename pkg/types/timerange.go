package types

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidTimeRange возвращается при некорректном формате диапазона времени
	ErrInvalidTimeRange = errors.New("invalid time range format, expected HH:MM - HH:MM")

	// ErrRangeOrder возвращается, когда конец диапазона не позже начала
	ErrRangeOrder = errors.New("time range end must be after start")
)

// TimeRange полуоткрытый интервал времени суток [Start, End)
// Шаблон с единственным временем представляется как Start == End
type TimeRange struct {
	Start TimeString
	End   TimeString
}

// ParseTimeRange парсит "HH:MM - HH:MM" или одиночное "HH:MM"
// Одиночное время превращается в точечный диапазон (Start == End)
func ParseTimeRange(s string) (TimeRange, error) {
	parts := strings.Split(s, "-")
	switch len(parts) {
	case 1:
		start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
		if err != nil {
			return TimeRange{}, ErrInvalidTimeRange
		}
		return TimeRange{Start: start, End: start}, nil
	case 2:
		start, err := NewTimeStringFromString(strings.TrimSpace(parts[0]))
		if err != nil {
			return TimeRange{}, ErrInvalidTimeRange
		}
		end, err := NewTimeStringFromString(strings.TrimSpace(parts[1]))
		if err != nil {
			return TimeRange{}, ErrInvalidTimeRange
		}
		if end.IsBefore(start) {
			return TimeRange{}, ErrRangeOrder
		}
		return TimeRange{Start: start, End: end}, nil
	default:
		return TimeRange{}, ErrInvalidTimeRange
	}
}

// NewTimeRange создает диапазон из начала и конца
func NewTimeRange(start, end TimeString) (TimeRange, error) {
	if err := start.Validate(); err != nil {
		return TimeRange{}, err
	}
	if err := end.Validate(); err != nil {
		return TimeRange{}, err
	}
	if end.IsBefore(start) {
		return TimeRange{}, ErrRangeOrder
	}
	return TimeRange{Start: start, End: end}, nil
}

// IsPoint возвращает true для точечного диапазона (одиночное время)
func (r TimeRange) IsPoint() bool {
	return r.Start == r.End
}

// DurationMinutes возвращает длину диапазона в минутах
func (r TimeRange) DurationMinutes() int {
	start, err := r.Start.Minutes()
	if err != nil {
		return 0
	}
	end, err := r.End.Minutes()
	if err != nil {
		return 0
	}
	return end - start
}

// Overlaps проверяет реальное пересечение полуоткрытых интервалов
// Граничащие интервалы (конец одного == начало другого) НЕ пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && r.End.IsAfter(other.Start)
}

// String возвращает "HH:MM - HH:MM" или "HH:MM" для точечного диапазона
func (r TimeRange) String() string {
	if r.IsPoint() {
		return r.Start.String()
	}
	return r.Start.String() + " - " + r.End.String()
}
