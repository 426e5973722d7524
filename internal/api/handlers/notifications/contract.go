package notifications

import (
	"context"

	"github.com/chayanin-p/TBN-AppointmentService/internal/service/notifications/models"
)

type NotificationsService interface {
	List(ctx context.Context, userID int64) (*models.NotificationListResponse, error)
	Create(ctx context.Context, req *models.SaveNotificationRequest) (*models.NotificationResponse, error)
	Update(ctx context.Context, id int64, req *models.SaveNotificationRequest) (*models.NotificationResponse, error)
	Delete(ctx context.Context, id, userID int64) error
	Subscribe(ctx context.Context, req *models.SubscribeRequest) error
	Unsubscribe(ctx context.Context, userID int64) error
}

// Notifier запускает рассылку будильников вне расписания cron
type Notifier interface {
	Run(ctx context.Context) (int, string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
