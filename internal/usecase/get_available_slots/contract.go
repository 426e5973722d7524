package get_available_slots

import (
	"context"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// ScheduleRepository интерфейс репозитория шаблонов расписания
type ScheduleRepository interface {
	// List получает шаблоны с опциональной фильтрацией по типу активности
	List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на конкретную дату
	GetByDate(ctx context.Context, filter domain.BookingsOnDateFilter) ([]*domain.Booking, error)
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
