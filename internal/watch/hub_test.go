package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHub_SubscriberReceivesChangedSnapshot(t *testing.T) {
	var version atomic.Int64
	fetch := func(ctx context.Context) ([]byte, error) {
		if version.Load() == 0 {
			return []byte(`{"schedules":[]}`), nil
		}
		return []byte(`{"schedules":[{"id":1}]}`), nil
	}

	hub := NewHub(fetch, 10*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	// Первый снимок приходит после стартового опроса
	select {
	case snapshot := <-ch:
		assert.Equal(t, `{"schedules":[]}`, string(snapshot))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	version.Store(1)

	select {
	case snapshot := <-ch:
		assert.Equal(t, `{"schedules":[{"id":1}]}`, string(snapshot))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for updated snapshot")
	}
}

func TestHub_UnchangedSnapshotNotRebroadcast(t *testing.T) {
	fetch := func(ctx context.Context) ([]byte, error) {
		return []byte(`{"schedules":[]}`), nil
	}

	hub := NewHub(fetch, 5*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for initial snapshot")
	}

	// Данные не менялись - повторных снимков быть не должно
	select {
	case snapshot := <-ch:
		t.Fatalf("unexpected rebroadcast: %s", snapshot)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_LateSubscriberGetsLastSnapshot(t *testing.T) {
	fetch := func(ctx context.Context) ([]byte, error) {
		return []byte(`{"schedules":[{"id":1}]}`), nil
	}

	hub := NewHub(fetch, 5*time.Millisecond, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	// Даем хабу время на первый опрос
	time.Sleep(30 * time.Millisecond)

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	select {
	case snapshot := <-ch:
		assert.Equal(t, `{"schedules":[{"id":1}]}`, string(snapshot))
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for replayed snapshot")
	}
}

func TestHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(func(ctx context.Context) ([]byte, error) {
		return []byte(`{}`), nil
	}, time.Hour, nopLogger{})

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()
	// Повторная отписка безопасна
	unsubscribe()

	_, open := <-ch
	require.False(t, open)
}
