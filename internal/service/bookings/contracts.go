package bookings

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, filter domain.UserBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id int64) error
	ClearCalendarEventID(ctx context.Context, id int64) error
}

// CalendarClient интерфейс клиента календарного моста
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
