package save_schedule

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	Create(ctx context.Context, template *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error)
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
