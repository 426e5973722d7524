package activity_types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/activities"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/activities/models"
)

const (
	msgInvalidRequestBody   = "ข้อมูลคำขอไม่ถูกต้อง"
	msgInvalidActivityID    = "รหัสประเภทกิจกรรมไม่ถูกต้อง"
	msgActivityTypeNotFound = "ไม่พบประเภทกิจกรรม"
	msgDuplicateName        = "มีประเภทกิจกรรมชื่อนี้อยู่แล้ว"
	msgNameRequired         = "กรุณาระบุชื่อประเภทกิจกรรม"
)

type Handler struct {
	service ActivitiesService
	logger  Logger
}

func NewHandler(service ActivitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/activity-types
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /activity-types - Failed to list: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleCreate POST /api/v1/activity-types
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req models.CreateActivityTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /activity-types - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrDuplicateName):
			h.logger.Warn("POST /activity-types - Duplicate name: %q", req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("POST /activity-types - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("POST /activity-types - Failed to create: name=%q, error=%v", req.Name, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /activity-types - Activity type created successfully: id=%d, name=%q",
		result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/activity-types/{activityTypeId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	activityTypeID, err := strconv.ParseInt(mux.Vars(r)["activityTypeId"], 10, 64)
	if err != nil || activityTypeID <= 0 {
		h.logger.Warn("PUT /activity-types/{id} - Invalid ID: %q", mux.Vars(r)["activityTypeId"])
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	var req models.UpdateActivityTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /activity-types/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), activityTypeID, &req)
	if err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityTypeNotFound):
			h.logger.Warn("PUT /activity-types/{id} - Not found: id=%d", activityTypeID)
			handlers.RespondNotFound(w, msgActivityTypeNotFound)

		case errors.Is(err, activities.ErrDuplicateName):
			h.logger.Warn("PUT /activity-types/{id} - Duplicate name: id=%d, name=%q", activityTypeID, req.Name)
			handlers.RespondConflict(w, msgDuplicateName)

		case errors.Is(err, activities.ErrInvalidInput):
			h.logger.Warn("PUT /activity-types/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgNameRequired)

		default:
			h.logger.Error("PUT /activity-types/{id} - Failed to update: id=%d, error=%v", activityTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /activity-types/{id} - Activity type updated successfully: id=%d", activityTypeID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/activity-types/{activityTypeId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	activityTypeID, err := strconv.ParseInt(mux.Vars(r)["activityTypeId"], 10, 64)
	if err != nil || activityTypeID <= 0 {
		h.logger.Warn("DELETE /activity-types/{id} - Invalid ID: %q", mux.Vars(r)["activityTypeId"])
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	if err := h.service.Delete(r.Context(), activityTypeID); err != nil {
		switch {
		case errors.Is(err, activities.ErrActivityTypeNotFound):
			h.logger.Warn("DELETE /activity-types/{id} - Not found: id=%d", activityTypeID)
			handlers.RespondNotFound(w, msgActivityTypeNotFound)

		default:
			h.logger.Error("DELETE /activity-types/{id} - Failed to delete: id=%d, error=%v", activityTypeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /activity-types/{id} - Activity type deleted successfully: id=%d", activityTypeID)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
