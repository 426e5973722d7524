package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/api/middleware"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/bookings"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/bookings/models"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/ptr"
)

const (
	msgMissingUserID = "ไม่พบข้อมูลผู้ใช้"
	msgInvalidUserID = "รหัสผู้ใช้ไม่ถูกต้อง"
	msgAccessDenied  = "คุณไม่มีสิทธิ์ดูประวัติการจองของผู้ใช้คนอื่น"
	msgInvalidStatus = "สถานะการจองไม่ถูกต้อง"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings
// Query params: status (опционально), includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	pathUserID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || pathUserID <= 0 {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %q", mux.Vars(r)["userId"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	// История записей видна только её владельцу
	if pathUserID != authUserID {
		h.logger.Warn("GET /users/{id}/bookings - Access denied: auth_user=%d, path_user=%d",
			authUserID, pathUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserBookingsRequest{
		UserID:          pathUserID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid status: user_id=%d, status=%v",
				pathUserID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v",
				pathUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Bookings retrieved successfully: user_id=%d, count=%d",
		pathUserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
