package delete_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/schedules"
)

const (
	msgInvalidScheduleID = "รหัสตารางเวลาไม่ถูกต้อง"
	msgScheduleNotFound  = "ไม่พบตารางเวลา"
)

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

// Handle DELETE /api/v1/schedules/{scheduleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	scheduleID, err := strconv.ParseInt(mux.Vars(r)["scheduleId"], 10, 64)
	if err != nil || scheduleID <= 0 {
		h.logger.Warn("DELETE /schedules/{id} - Invalid schedule ID: %q", mux.Vars(r)["scheduleId"])
		handlers.RespondBadRequest(w, msgInvalidScheduleID)
		return
	}

	if err := h.service.Delete(r.Context(), scheduleID); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /schedules/{id} - Schedule not found: schedule_id=%d", scheduleID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		default:
			h.logger.Error("DELETE /schedules/{id} - Failed to delete: schedule_id=%d, error=%v", scheduleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /schedules/{id} - Schedule deleted successfully: schedule_id=%d", scheduleID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
