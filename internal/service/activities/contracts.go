package activities

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// ActivityTypeRepository интерфейс репозитория типов активностей
type ActivityTypeRepository interface {
	Create(ctx context.Context, activity *domain.ActivityType) (*domain.ActivityType, error)
	GetByID(ctx context.Context, id int64) (*domain.ActivityType, error)
	List(ctx context.Context) ([]*domain.ActivityType, error)
	Update(ctx context.Context, activity *domain.ActivityType) error
	Delete(ctx context.Context, id int64) error
}

// ScheduleRepository интерфейс репозитория шаблонов расписания
// Нужен для каскадного переименования типа в шаблонах
type ScheduleRepository interface {
	RenameActivityType(ctx context.Context, oldName, newName string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
