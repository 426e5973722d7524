package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	userRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/user"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

type fakeNotificationRepo struct {
	notifications []*domain.CustomNotification
	lastQuery     types.TimeString
}

func (f *fakeNotificationRepo) ListEnabledByTime(ctx context.Context, alarmTime types.TimeString) ([]*domain.CustomNotification, error) {
	f.lastQuery = alarmTime
	result := make([]*domain.CustomNotification, 0)
	for _, n := range f.notifications {
		if n.IsEnabled && n.Time == alarmTime {
			result = append(result, n)
		}
	}
	return result, nil
}

type fakeUserRepo struct {
	subscriptions map[int64]*domain.PushSubscription
	deleted       []int64
}

func (f *fakeUserRepo) GetPushSubscription(ctx context.Context, userID int64) (*domain.PushSubscription, error) {
	sub, ok := f.subscriptions[userID]
	if !ok {
		return nil, userRepo.ErrSubscriptionNotFound
	}
	return sub, nil
}

func (f *fakeUserRepo) DeletePushSubscription(ctx context.Context, userID int64) error {
	delete(f.subscriptions, userID)
	f.deleted = append(f.deleted, userID)
	return nil
}

type sentPush struct {
	userID  int64
	payload []byte
}

type fakePushSender struct {
	sent []sentPush
	err  error
}

func (f *fakePushSender) Send(ctx context.Context, subscription *domain.PushSubscription, payload []byte) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentPush{userID: subscription.UserID, payload: payload})
	return nil
}

type fakeMetrics struct {
	sent   int
	failed int
}

func (f *fakeMetrics) IncNotificationSent()   { f.sent++ }
func (f *fakeMetrics) IncNotificationFailed() { f.failed++ }

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func subscription(userID int64) *domain.PushSubscription {
	return &domain.PushSubscription{
		UserID:   userID,
		Endpoint: "https://push.example/sub",
		P256dh:   "p256dh-key",
		Auth:     "auth-secret",
	}
}

// 7 сентября 2026, 09:00 понедельник
var runTime = time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)

func newTestNotifier(
	notifications *fakeNotificationRepo,
	users *fakeUserRepo,
	sender *fakePushSender,
	metrics *fakeMetrics,
) *Notifier {
	n := New(notifications, users, sender, metrics, time.UTC, nopLogger{})
	n.timeProvider = &fixedTimeProvider{now: runTime}
	return n
}

func TestNotifier_Run_SendsMatchingAlarm(t *testing.T) {
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "กินยา", Time: "09:00", IsEnabled: true},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{7: subscription(7)}}
	sender := &fakePushSender{}
	metrics := &fakeMetrics{}

	n := newTestNotifier(notifications, users, sender, metrics)

	sent, at, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, "09:00", at)
	assert.Equal(t, types.TimeString("09:00"), notifications.lastQuery)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, 1, metrics.sent)

	var payload map[string]map[string]string
	require.NoError(t, json.Unmarshal(sender.sent[0].payload, &payload))
	assert.Equal(t, "กินยา", payload["notification"]["title"])
	assert.Equal(t, "ถึงเวลา 09:00 แล้ว", payload["notification"]["body"])
}

func TestNotifier_Run_DisabledAlarmNotSent(t *testing.T) {
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "กินยา", Time: "09:00", IsEnabled: false},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{7: subscription(7)}}
	sender := &fakePushSender{}
	metrics := &fakeMetrics{}

	n := newTestNotifier(notifications, users, sender, metrics)

	sent, _, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Empty(t, sender.sent)
}

func TestNotifier_Run_OtherMinuteNotSent(t *testing.T) {
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "กินยา", Time: "09:01", IsEnabled: true},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{7: subscription(7)}}
	sender := &fakePushSender{}

	n := newTestNotifier(notifications, users, sender, &fakeMetrics{})

	sent, _, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestNotifier_Run_RepeatDaysFilter(t *testing.T) {
	// runTime - понедельник (weekday 1)
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "จันทร์", Time: "09:00", IsEnabled: true, RepeatDays: []int{1}},
		{ID: 2, UserID: 8, Title: "อาทิตย์", Time: "09:00", IsEnabled: true, RepeatDays: []int{0}},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{
		7: subscription(7),
		8: subscription(8),
	}}
	sender := &fakePushSender{}

	n := newTestNotifier(notifications, users, sender, &fakeMetrics{})

	sent, _, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(7), sender.sent[0].userID)
}

func TestNotifier_Run_ExpiredSubscriptionPruned(t *testing.T) {
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "กินยา", Time: "09:00", IsEnabled: true},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{7: subscription(7)}}
	sender := &fakePushSender{err: ErrSubscriptionExpired}
	metrics := &fakeMetrics{}

	n := newTestNotifier(notifications, users, sender, metrics)

	sent, _, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, metrics.failed)
	assert.Equal(t, []int64{7}, users.deleted)
}

func TestNotifier_Run_MissingSubscriptionCountsAsFailed(t *testing.T) {
	notifications := &fakeNotificationRepo{notifications: []*domain.CustomNotification{
		{ID: 1, UserID: 7, Title: "กินยา", Time: "09:00", IsEnabled: true},
	}}
	users := &fakeUserRepo{subscriptions: map[int64]*domain.PushSubscription{}}
	metrics := &fakeMetrics{}

	n := newTestNotifier(notifications, users, &fakePushSender{}, metrics)

	sent, _, err := n.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, metrics.failed)
}
