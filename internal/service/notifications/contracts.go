package notifications

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// NotificationRepository интерфейс репозитория будильников
type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.CustomNotification) (*domain.CustomNotification, error)
	GetByID(ctx context.Context, id int64) (*domain.CustomNotification, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.CustomNotification, error)
	Update(ctx context.Context, notification *domain.CustomNotification) error
	Delete(ctx context.Context, id, userID int64) error
}

// UserRepository интерфейс репозитория push-подписок
type UserRepository interface {
	SavePushSubscription(ctx context.Context, subscription *domain.PushSubscription) error
	DeletePushSubscription(ctx context.Context, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
