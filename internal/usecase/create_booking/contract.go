package create_booking

import (
	"context"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/internal/integrations/googlecalendar"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, filter domain.BookingsOnDateFilter) ([]*domain.Booking, error)
}

// ActivityTypeRepository интерфейс репозитория типов активностей
type ActivityTypeRepository interface {
	GetByName(ctx context.Context, name string) (*domain.ActivityType, error)
}

// CalendarClient интерфейс клиента календарного моста
type CalendarClient interface {
	CreateEvent(ctx context.Context, event googlecalendar.EventRequest) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
