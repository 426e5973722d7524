package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	userRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/user"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// ErrInternal возвращается при внутренних ошибках рассыльщика
var ErrInternal = errors.New("notifier: internal error")

// pushPayload полезная нагрузка push-уведомления
// Формат повторяет то, что ожидает service worker клиента
type pushPayload struct {
	Notification pushNotification `json:"notification"`
}

type pushNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Notifier рассылает будильники пользователей через web push
//
// Крон будит рассыльщика каждую минуту; рассылаются будильники, чье
// время точно совпадает с текущей минутой в часовом поясе клиники
type Notifier struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	pushSender       PushSender
	metrics          Metrics
	timeProvider     TimeProvider
	location         *time.Location
	logger           Logger

	// Защищает от наложения запусков: ручной запуск и крон-тик
	// не должны рассылать одну минуту дважды
	mu   sync.Mutex
	cron *cron.Cron
}

// New создает новый экземпляр рассыльщика
func New(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	pushSender PushSender,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Notifier {
	return &Notifier{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		pushSender:       pushSender,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		location:         location,
		logger:           logger,
	}
}

// Start запускает поминутный крон
func (n *Notifier) Start() error {
	n.cron = cron.New(cron.WithLocation(n.location))

	_, err := n.cron.AddFunc("* * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 55*time.Second)
		defer cancel()

		if _, _, err := n.Run(ctx); err != nil {
			n.logger.Error("Notifier: scheduled run failed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("%w: failed to schedule cron: %v", ErrInternal, err)
	}

	n.cron.Start()
	n.logger.Info("Notifier: cron started, timezone=%s", n.location)
	return nil
}

// Stop останавливает крон и ждет завершения текущего запуска
func (n *Notifier) Stop() {
	if n.cron == nil {
		return
	}
	<-n.cron.Stop().Done()
	n.logger.Info("Notifier: cron stopped")
}

// Run выполняет один проход рассылки для текущей минуты
// Возвращает количество отправленных уведомлений и время запуска (HH:MM)
func (n *Notifier) Run(ctx context.Context) (int, string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	now := n.timeProvider.Now().In(n.location)
	currentTime := types.NewTimeString(now)

	notifications, err := n.notificationRepo.ListEnabledByTime(ctx, currentTime)
	if err != nil {
		n.logger.Error("Notifier: failed to list notifications for %s: %v", currentTime, err)
		return 0, currentTime.String(), fmt.Errorf("%w: failed to list notifications: %v", ErrInternal, err)
	}

	sent := 0
	for _, notification := range notifications {
		if !notification.FiresOn(now) {
			continue
		}

		if err := n.deliver(ctx, notification.UserID, notification.Title, currentTime); err != nil {
			n.metrics.IncNotificationFailed()
			n.logger.Warn("Notifier: failed to deliver notification id=%d to user=%d: %v",
				notification.ID, notification.UserID, err)
			continue
		}

		n.metrics.IncNotificationSent()
		sent++
	}

	if sent > 0 {
		n.logger.Info("Notifier: sent %d notifications at %s", sent, currentTime)
	}

	return sent, currentTime.String(), nil
}

func (n *Notifier) deliver(ctx context.Context, userID int64, title string, alarmTime types.TimeString) error {
	subscription, err := n.userRepo.GetPushSubscription(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrSubscriptionNotFound) {
			return fmt.Errorf("user has no push subscription")
		}
		return err
	}

	payload, err := json.Marshal(pushPayload{
		Notification: pushNotification{
			Title: title,
			Body:  fmt.Sprintf("ถึงเวลา %s แล้ว", alarmTime),
		},
	})
	if err != nil {
		return err
	}

	if err := n.pushSender.Send(ctx, subscription, payload); err != nil {
		// Протухшую подписку убираем, чтобы не долбить push-сервис впустую
		if errors.Is(err, ErrSubscriptionExpired) {
			if delErr := n.userRepo.DeletePushSubscription(ctx, userID); delErr != nil {
				n.logger.Warn("Notifier: failed to prune expired subscription for user=%d: %v", userID, delErr)
			} else {
				n.logger.Info("Notifier: pruned expired subscription for user=%d", userID)
			}
		}
		return err
	}

	return nil
}
