package models

import (
	"errors"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение записей пользователя
type GetUserBookingsRequest struct {
	UserID          int64   `json:"userId"`
	Status          *string `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool    `json:"includeInactive,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetUserBookingsRequest) ToDomainFilter() (domain.UserBookingsFilter, error) {
	filter := domain.UserBookingsFilter{
		UserID:          r.UserID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Title           string `json:"title"`
	Date            string `json:"date"` // "2026-09-07"
	StartTime       string `json:"time"` // "10:00"
	DurationMinutes int    `json:"duration"`
	Status          string `json:"status"`
	ActivityType    string `json:"activityType"`
	MeetingFormat   string `json:"meetingFormat"`

	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Subject     *string `json:"subject,omitempty"`

	GoogleCalendarEventID *string `json:"googleCalendarEventId,omitempty"`
	CancelledAt           *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                    b.ID,
		UserID:                b.UserID,
		Title:                 b.Title,
		Date:                  b.BookingDate.Format(domain.DateFormat),
		StartTime:             b.StartTime.String(),
		DurationMinutes:       b.DurationMinutes,
		Status:                string(b.Status),
		ActivityType:          b.ActivityType,
		MeetingFormat:         string(b.MeetingFormat),
		Description:           b.Description,
		Location:              b.Location,
		Subject:               b.Subject,
		GoogleCalendarEventID: b.GoogleCalendarEventID,
		CreatedAt:             b.CreatedAt,
		UpdatedAt:             b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledAt := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed:
		return domain.StatusConfirmed, nil
	case domain.StatusCancelled:
		return domain.StatusCancelled, nil
	default:
		return "", ErrInvalidStatus
	}
}
