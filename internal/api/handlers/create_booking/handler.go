package create_booking

import (
	"errors"
	"net/http"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/api/middleware"
	createBooking "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody   = "ข้อมูลคำขอไม่ถูกต้อง"
	msgMissingUserID        = "ไม่พบข้อมูลผู้ใช้"
	msgInvalidDate          = "รูปแบบวันที่ไม่ถูกต้อง ต้องเป็น YYYY-MM-DD"
	msgInvalidDuration      = "ระยะเวลาไม่ถูกต้อง"
	msgActivityTypeNotFound = "ไม่พบประเภทกิจกรรม"
	msgInvalidTimeSlot      = "ช่วงเวลาไม่ถูกต้อง"
	msgSlotTaken            = "ช่วงเวลานี้ถูกจองแล้ว กรุณาเลือกเวลาอื่น"
	msgPastTimeSlot         = "ไม่สามารถจองเวลาที่ผ่านมาแล้วได้"
	msgCalendarUnavailable  = "ไม่สามารถเชื่อมต่อปฏิทินได้ กรุณาลองใหม่อีกครั้ง"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: user_id=%d, type=%s, time=%s",
				userID, req.ActivityType, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrActivityTypeNotFound):
			h.logger.Warn("POST /bookings - Activity type not found: user_id=%d, type=%s", userID, req.ActivityType)
			handlers.RespondNotFound(w, msgActivityTypeNotFound)

		case errors.Is(err, createBooking.ErrInvalidDuration):
			h.logger.Warn("POST /bookings - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrPastTimeSlot):
			h.logger.Warn("POST /bookings - Past time slot: user_id=%d, date=%s, time=%s",
				userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgPastTimeSlot)

		case errors.Is(err, createBooking.ErrCalendarUnavailable):
			h.logger.Error("POST /bookings - Calendar unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgCalendarUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
