package watch_schedules

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHub struct {
	updates chan []byte
}

func (f *fakeHub) Subscribe() (<-chan []byte, func()) {
	return f.updates, func() {}
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandler_StreamsSnapshots(t *testing.T) {
	hub := &fakeHub{updates: make(chan []byte, 2)}
	hub.updates <- []byte(`{"schedules":[]}`)

	handler := NewHandler(hub, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/watch", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		handler.Handle(rec, req)
	}()

	// Даем обработчику отдать начальный снимок и закрываем соединение
	time.Sleep(50 * time.Millisecond)
	cancel()
	wg.Wait()

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "data: {\"schedules\":[]}\n\n", rec.Body.String())
}

func TestHandler_ClosedHubEndsStream(t *testing.T) {
	hub := &fakeHub{updates: make(chan []byte)}
	close(hub.updates)

	handler := NewHandler(hub, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/schedules/watch", nil)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.Handle(rec, req)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after hub shutdown")
	}

	assert.Equal(t, http.StatusOK, rec.Code)
}
