package notifications

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/api/middleware"
	notificationsService "github.com/chayanin-p/TBN-AppointmentService/internal/service/notifications"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/notifications/models"
)

const (
	msgMissingUserID         = "ไม่พบข้อมูลผู้ใช้"
	msgInvalidRequestBody    = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidNotificationID = "รหัสการแจ้งเตือนไม่ถูกต้อง"
	msgNotificationNotFound  = "ไม่พบการแจ้งเตือน"
)

type Handler struct {
	service  NotificationsService
	notifier Notifier
	logger   Logger
}

func NewHandler(service NotificationsService, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// HandleList GET /api/v1/notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/notifications
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.SaveNotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("POST /notifications - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /notifications - Failed to create: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications - Notification created successfully: id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/notifications/{notificationId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || notificationID <= 0 {
		h.logger.Warn("PUT /notifications/{id} - Invalid ID: %q", mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	var req models.SaveNotificationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /notifications/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Update(r.Context(), notificationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("PUT /notifications/{id} - Not found: id=%d, user_id=%d", notificationID, userID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("PUT /notifications/{id} - Invalid input: id=%d, error=%v", notificationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /notifications/{id} - Failed to update: id=%d, error=%v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /notifications/{id} - Notification updated successfully: id=%d", notificationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/notifications/{notificationId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || notificationID <= 0 {
		h.logger.Warn("DELETE /notifications/{id} - Invalid ID: %q", mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	if err := h.service.Delete(r.Context(), notificationID, userID); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrNotificationNotFound):
			h.logger.Warn("DELETE /notifications/{id} - Not found: id=%d, user_id=%d", notificationID, userID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("DELETE /notifications/{id} - Failed to delete: id=%d, error=%v", notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Notification deleted successfully: id=%d", notificationID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleSubscribe POST /api/v1/notifications/subscribe
func (h *Handler) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	if err := h.service.Subscribe(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, notificationsService.ErrInvalidInput):
			h.logger.Warn("POST /notifications/subscribe - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /notifications/subscribe - Failed: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /notifications/subscribe - Subscription saved: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleUnsubscribe DELETE /api/v1/notifications/subscribe
func (h *Handler) HandleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Unsubscribe(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /notifications/subscribe - Failed: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /notifications/subscribe - Subscription deleted: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleRun POST /api/v1/notifications/run
// Ручной запуск рассылки текущей минуты, используется для отладки
func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	sent, timeStr, err := h.notifier.Run(r.Context())
	if err != nil {
		h.logger.Error("POST /notifications/run - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /notifications/run - Completed: time=%s, sent=%d", timeStr, sent)
	handlers.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"sent":    sent,
		"time":    timeStr,
	})
}
