package create_schedule

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	saveSchedule "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/save_schedule"
)

const (
	msgInvalidRequestBody = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidDate        = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgScheduleNotFound   = "ไม่พบตารางเวลาที่ต้องการแก้ไข"
	msgConflictTemplate   = "ช่วงเวลาซ้อนทับกับตารางเดิม: %s %s (%s)"
)

type Handler struct {
	useCase SaveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase SaveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/schedules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedules - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *saveSchedule.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /schedules - Schedule conflict: type=%s, day=%s, range=%s",
				conflict.ActivityType, conflict.Weekday, conflict.Range)
			handlers.RespondConflict(w, fmt.Sprintf(msgConflictTemplate,
				conflict.Weekday, conflict.Range, conflict.ActivityType))

		case errors.Is(err, saveSchedule.ErrScheduleNotFound):
			h.logger.Warn("POST /schedules - Replaced schedule not found: id=%v", req.ReplacesID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, saveSchedule.ErrInvalidInput):
			h.logger.Warn("POST /schedules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /schedules - Failed to save schedule: type=%s, error=%v",
				req.ActivityType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /schedules - Schedules created successfully: type=%s, count=%d",
		req.ActivityType, len(result.Templates))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
