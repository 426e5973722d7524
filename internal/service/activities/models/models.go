package models

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// Request модели

// CreateActivityTypeRequest запрос на создание типа активности
type CreateActivityTypeRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // Пусто - цвет по умолчанию
}

// UpdateActivityTypeRequest запрос на обновление типа активности
type UpdateActivityTypeRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Response модели

// ActivityTypeResponse ответ с данными типа активности
type ActivityTypeResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ActivityTypeListResponse ответ со списком типов активностей
type ActivityTypeListResponse struct {
	ActivityTypes []ActivityTypeResponse `json:"activityTypes"`
}

// Методы конвертации

// FromDomainActivityType конвертирует domain модель в DTO
func FromDomainActivityType(a *domain.ActivityType) *ActivityTypeResponse {
	if a == nil {
		return nil
	}
	return &ActivityTypeResponse{
		ID:        a.ID,
		Name:      a.Name,
		Color:     a.Color,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainActivityTypeList конвертирует список domain моделей в DTO
func FromDomainActivityTypeList(activities []*domain.ActivityType) *ActivityTypeListResponse {
	result := make([]ActivityTypeResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, *FromDomainActivityType(a))
	}
	return &ActivityTypeListResponse{ActivityTypes: result}
}
