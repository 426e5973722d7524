package watch_schedules

import (
	"fmt"
	"net/http"
	"time"
)

type Handler struct {
	hub    ScheduleHub
	logger Logger
}

func NewHandler(hub ScheduleHub, logger Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger,
	}
}

// Handle GET /api/v1/schedules/watch
//
// Server-Sent Events: клиент получает снимок расписания при подключении
// и далее при каждом изменении. Соединение живет до отключения клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		h.logger.Error("GET /schedules/watch - Streaming not supported by response writer")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// Глобальный WriteTimeout сервера оборвал бы стрим, снимаем дедлайн
	// для этого соединения
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
		h.logger.Warn("GET /schedules/watch - Failed to clear write deadline: %v", err)
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates, cancel := h.hub.Subscribe()
	defer cancel()

	h.logger.Info("GET /schedules/watch - Client connected: remote=%s", r.RemoteAddr)

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /schedules/watch - Client disconnected: remote=%s", r.RemoteAddr)
			return

		case snapshot, ok := <-updates:
			if !ok {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", snapshot); err != nil {
				h.logger.Warn("GET /schedules/watch - Write failed: remote=%s, error=%v", r.RemoteAddr, err)
				return
			}
			flusher.Flush()
		}
	}
}
