package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// ErrSubscriptionExpired возвращается, когда push-сервис сообщает, что
// подписка больше не действительна (404/410)
var ErrSubscriptionExpired = errors.New("push subscription expired")

// WebPushSender отправляет push-уведомления через протокол Web Push
// с VAPID-авторизацией
type WebPushSender struct {
	publicKey  string
	privateKey string
	subscriber string
}

// NewWebPushSender создает новый экземпляр отправителя
func NewWebPushSender(publicKey, privateKey, subscriber string) *WebPushSender {
	return &WebPushSender{
		publicKey:  publicKey,
		privateKey: privateKey,
		subscriber: subscriber,
	}
}

// Send отправляет полезную нагрузку на подписку пользователя
func (s *WebPushSender) Send(ctx context.Context, subscription *domain.PushSubscription, payload []byte) error {
	resp, err := webpush.SendNotificationWithContext(ctx, payload, &webpush.Subscription{
		Endpoint: subscription.Endpoint,
		Keys: webpush.Keys{
			P256dh: subscription.P256dh,
			Auth:   subscription.Auth,
		},
	}, &webpush.Options{
		VAPIDPublicKey:  s.publicKey,
		VAPIDPrivateKey: s.privateKey,
		Subscriber:      s.subscriber,
		TTL:             60,
	})
	if err != nil {
		return fmt.Errorf("send push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		return ErrSubscriptionExpired
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("push service returned %d", resp.StatusCode)
	}

	return nil
}
