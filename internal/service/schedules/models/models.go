package models

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

// Request модели

// ListSchedulesRequest запрос на получение шаблонов расписания
type ListSchedulesRequest struct {
	ActivityType *string `json:"activityType,omitempty"` // Фильтр по типу активности
	Weekday      *string `json:"weekday,omitempty"`      // Фильтр по дню недели
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSchedulesRequest) ToDomainFilter() domain.ScheduleFilter {
	filter := domain.ScheduleFilter{
		ActivityType: r.ActivityType,
	}
	if r.Weekday != nil {
		weekday := domain.Weekday(*r.Weekday)
		filter.Weekday = &weekday
	}
	return filter
}

// Response модели

// ScheduleResponse ответ с данными шаблона расписания
type ScheduleResponse struct {
	ID           int64  `json:"id"`
	ActivityType string `json:"activityType"`
	Weekday      string `json:"day"`
	Time         string `json:"time"`      // "09:00 - 12:00" или "14:00"
	StartTime    string `json:"startTime"` // "09:00"
	EndTime      string `json:"endTime"`   // "12:00"

	Date        *string   `json:"date,omitempty"` // Дата разового шаблона, "2026-09-07"
	CreatedDate time.Time `json:"createdDate"`
}

// ScheduleListResponse ответ со списком шаблонов
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// Методы конвертации

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(t *domain.ScheduleTemplate) *ScheduleResponse {
	if t == nil {
		return nil
	}

	resp := &ScheduleResponse{
		ID:           t.ID,
		ActivityType: t.ActivityType,
		Weekday:      string(t.Weekday),
		Time:         t.TimeRange().String(),
		StartTime:    t.StartTime.String(),
		EndTime:      t.EndTime.String(),
		CreatedDate:  t.CreatedDate,
	}

	if t.Date != nil {
		date := t.Date.Format(domain.DateFormat)
		resp.Date = &date
	}

	return resp
}

// FromDomainScheduleList конвертирует список domain моделей в DTO
func FromDomainScheduleList(templates []*domain.ScheduleTemplate) *ScheduleListResponse {
	result := make([]ScheduleResponse, 0, len(templates))
	for _, t := range templates {
		result = append(result, *FromDomainSchedule(t))
	}
	return &ScheduleListResponse{Schedules: result}
}
