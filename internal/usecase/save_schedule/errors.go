package save_schedule

import (
	"errors"
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("save_schedule: invalid input data")

	// ErrScheduleNotFound возвращается, когда заменяемый шаблон не найден
	ErrScheduleNotFound = errors.New("save_schedule: schedule not found")

	// ErrScheduleConflict возвращается при пересечении с существующим шаблоном
	ErrScheduleConflict = errors.New("save_schedule: schedule conflict")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_schedule: internal error")
)

// ConflictError несет детали пересечения для ответа клиенту:
// с каким шаблоном и в каком интервале столкнулись
type ConflictError struct {
	Weekday      domain.Weekday
	ActivityType string
	Range        types.TimeRange
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("save_schedule: overlaps %s %s (%s)", e.Weekday, e.Range, e.ActivityType)
}

// Is позволяет проверять конфликт через errors.Is(err, ErrScheduleConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}
