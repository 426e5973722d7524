package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	getAvailableSlots "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/get_available_slots"
)

const (
	msgMissingType     = "กรุณาระบุประเภทกิจกรรม"
	msgMissingDate     = "กรุณาระบุวันที่"
	msgInvalidDate     = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgInvalidDuration = "ระยะเวลาไม่ถูกต้อง"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: type (required), date (required, YYYY-MM-DD), duration (опционально, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	activityType := r.URL.Query().Get("type")
	if activityType == "" {
		h.logger.Warn("GET /available-slots - Missing activity type")
		handlers.RespondBadRequest(w, msgMissingType)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationMinutes := 0
	if durationStr := r.URL.Query().Get("duration"); durationStr != "" {
		parsed, err := strconv.Atoi(durationStr)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /available-slots - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
		durationMinutes = parsed
	}

	useCaseReq, err := ToUseCaseRequest(activityType, dateStr, durationMinutes)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /available-slots - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingType)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: type=%s, date=%s, error=%v",
				activityType, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved successfully: type=%s, date=%s, slots_count=%d",
		activityType, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
