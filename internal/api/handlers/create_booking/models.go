package create_booking

import (
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	createBooking "github.com/chayanin-p/TBN-AppointmentService/internal/usecase/create_booking"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Title     string `json:"title"`
	Date      string `json:"date"` // "2026-09-07"
	StartTime string `json:"time"` // "10:00"

	Duration            string `json:"duration,omitempty"`            // "30 นาที", "1.5 ชั่วโมง"
	CustomDurationValue string `json:"customDurationValue,omitempty"` // "45"
	CustomDurationUnit  string `json:"customDurationUnit,omitempty"`  // "นาที" / "ชั่วโมง"

	ActivityType  string  `json:"activityType"`
	MeetingFormat string  `json:"meetingFormat,omitempty"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	Subject       *string `json:"subject,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:              userID,
		Title:               r.Title,
		Date:                date,
		StartTime:           types.TimeString(r.StartTime),
		Duration:            r.Duration,
		CustomDurationValue: r.CustomDurationValue,
		CustomDurationUnit:  r.CustomDurationUnit,
		ActivityType:        r.ActivityType,
		MeetingFormat:       r.MeetingFormat,
		Description:         r.Description,
		Location:            r.Location,
		Subject:             r.Subject,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	StartTime       string `json:"time"`
	DurationMinutes int    `json:"duration"`
	Status          string `json:"status"`
	ActivityType    string `json:"activityType"`
	MeetingFormat   string `json:"meetingFormat"`

	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Subject     *string `json:"subject,omitempty"`

	GoogleCalendarEventID *string `json:"googleCalendarEventId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:                    resp.ID,
		UserID:                resp.UserID,
		Title:                 resp.Title,
		Date:                  resp.BookingDate.Format(domain.DateFormat),
		StartTime:             resp.StartTime.String(),
		DurationMinutes:       resp.DurationMinutes,
		Status:                resp.Status,
		ActivityType:          resp.ActivityType,
		MeetingFormat:         resp.MeetingFormat,
		Description:           resp.Description,
		Location:              resp.Location,
		Subject:               resp.Subject,
		GoogleCalendarEventID: resp.GoogleCalendarEventID,
		CreatedAt:             resp.CreatedAt,
	}
}
