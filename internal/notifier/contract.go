package notifier

import (
	"context"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// NotificationRepository интерфейс репозитория будильников
type NotificationRepository interface {
	// ListEnabledByTime получает включенные будильники с точным совпадением времени
	ListEnabledByTime(ctx context.Context, alarmTime types.TimeString) ([]*domain.CustomNotification, error)
}

// UserRepository интерфейс репозитория push-подписок
type UserRepository interface {
	GetPushSubscription(ctx context.Context, userID int64) (*domain.PushSubscription, error)
	DeletePushSubscription(ctx context.Context, userID int64) error
}

// PushSender интерфейс отправки push-уведомлений
type PushSender interface {
	// Send отправляет полезную нагрузку на подписку пользователя
	// Возвращает ErrSubscriptionExpired для протухших подписок
	Send(ctx context.Context, subscription *domain.PushSubscription, payload []byte) error
}

// Metrics интерфейс метрик рассыльщика
type Metrics interface {
	IncNotificationSent()
	IncNotificationFailed()
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
