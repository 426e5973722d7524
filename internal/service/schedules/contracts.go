package schedules

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
