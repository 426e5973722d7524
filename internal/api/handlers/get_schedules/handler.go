package get_schedules

import (
	"net/http"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/schedules/models"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/ptr"
)

const msgInvalidWeekday = "วันในสัปดาห์ไม่ถูกต้อง"

type Handler struct {
	service SchedulesService
	logger  Logger
}

func NewHandler(service SchedulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedules
// Query params: type (опционально), day (опционально, "จ."..."อา.")
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListSchedulesRequest{}

	if activityType := r.URL.Query().Get("type"); activityType != "" {
		req.ActivityType = ptr.Ptr(activityType)
	}

	if day := r.URL.Query().Get("day"); day != "" {
		if !domain.Weekday(day).IsValid() {
			h.logger.Warn("GET /schedules - Invalid weekday: %q", day)
			handlers.RespondBadRequest(w, msgInvalidWeekday)
			return
		}
		req.Weekday = ptr.Ptr(day)
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /schedules - Failed to list schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /schedules - Schedules retrieved successfully: count=%d", len(result.Schedules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
