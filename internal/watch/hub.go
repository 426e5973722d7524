package watch

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FetchFunc возвращает текущий снимок наблюдаемых данных в виде JSON
type FetchFunc func(ctx context.Context) ([]byte, error)

// Hub раздает подписчикам снимки расписания по мере их изменения
//
// Вместо подписки на изменения БД хаб опрашивает источник с фиксированным
// интервалом и рассылает снимок, только когда он отличается от предыдущего.
// Подписчики с заполненным буфером пропускают снимок: следующий тик
// все равно принесет им актуальное состояние
type Hub struct {
	fetch    FetchFunc
	interval time.Duration
	logger   Logger

	mu   sync.Mutex
	subs map[chan []byte]struct{}
	last []byte
}

// NewHub создает новый экземпляр хаба
func NewHub(fetch FetchFunc, interval time.Duration, logger Logger) *Hub {
	return &Hub{
		fetch:    fetch,
		interval: interval,
		subs:     make(map[chan []byte]struct{}),
		logger:   logger,
	}
}

// Run крутит цикл опроса до отмены контекста
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.poll(ctx)
		}
	}
}

// Subscribe регистрирует подписчика
// Новый подписчик сразу получает последний известный снимок
func (h *Hub) Subscribe() (<-chan []byte, func()) {
	ch := make(chan []byte, 4)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	if h.last != nil {
		ch <- h.last
	}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}

	return ch, cancel
}

func (h *Hub) poll(ctx context.Context) {
	snapshot, err := h.fetch(ctx)
	if err != nil {
		h.logger.Warn("Watch: failed to fetch snapshot: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if bytes.Equal(snapshot, h.last) {
		return
	}
	h.last = snapshot

	for ch := range h.subs {
		select {
		case ch <- snapshot:
		default:
		}
	}
}
