package create_schedule

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	saveSchedule "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/save_schedule"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// CreateScheduleRequest HTTP request model
type CreateScheduleRequest struct {
	ActivityType string   `json:"activityType"`
	Weekdays     []string `json:"days,omitempty"` // ["จ.", "พ."], исключает date
	Date         *string  `json:"date,omitempty"` // "2026-09-07", разовый шаблон
	StartTime    string   `json:"startTime"`      // "09:00"
	EndTime      string   `json:"endTime"`        // "12:00"; пусто - точечный шаблон
	ReplacesID   *int64   `json:"replacesId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateScheduleRequest) ToUseCaseRequest() (*saveSchedule.Request, error) {
	req := &saveSchedule.Request{
		ActivityType: r.ActivityType,
		Weekdays:     r.Weekdays,
		StartTime:    types.TimeString(r.StartTime),
		EndTime:      types.TimeString(r.EndTime),
		ReplacesID:   r.ReplacesID,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// CreatedSchedule модель созданного шаблона в ответе
type CreatedSchedule struct {
	ID           int64     `json:"id"`
	ActivityType string    `json:"activityType"`
	Weekday      string    `json:"day"`
	StartTime    string    `json:"startTime"`
	EndTime      string    `json:"endTime"`
	Date         *string   `json:"date,omitempty"`
	CreatedDate  time.Time `json:"createdDate"`
}

// CreateScheduleResponse HTTP response model
type CreateScheduleResponse struct {
	Schedules []CreatedSchedule `json:"schedules"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *saveSchedule.Response) *CreateScheduleResponse {
	schedules := make([]CreatedSchedule, len(resp.Templates))
	for i, tpl := range resp.Templates {
		schedules[i] = CreatedSchedule{
			ID:           tpl.ID,
			ActivityType: tpl.ActivityType,
			Weekday:      tpl.Weekday,
			StartTime:    tpl.StartTime.String(),
			EndTime:      tpl.EndTime.String(),
			CreatedDate:  tpl.CreatedDate,
		}
		if tpl.Date != nil {
			date := tpl.Date.Format(domain.DateFormat)
			schedules[i].Date = &date
		}
	}
	return &CreateScheduleResponse{Schedules: schedules}
}
