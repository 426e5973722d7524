package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	activityRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/activity"
	"github.com/chayanin-p/TBN-AppointmentService/internal/integrations/googlecalendar"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	bookingRepo    BookingRepository
	activityRepo   ActivityTypeRepository
	calendarClient CalendarClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	location       *time.Location
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	activityRepo ActivityTypeRepository,
	calendarClient CalendarClient,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		activityRepo:   activityRepo,
		calendarClient: calendarClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		location:       location,
		logger:         logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию для предотвращения гонки данных
// при одновременной записи на один и тот же слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, type=%s, date=%s, time=%s",
		req.UserID, req.ActivityType, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем длительность записи
	durationMinutes, err := resolveDurationMinutes(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: duration resolution failed: %v", err)
		return nil, err
	}

	// 3. Запись должна помещаться в сутки
	if err := validateSlotFits(req.StartTime, durationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Нельзя записаться на прошедшее время
	if err := uc.validateNotPast(req.Date, req.StartTime); err != nil {
		uc.logger.Warn("CreateBooking: past slot rejected: date=%s, time=%s",
			req.Date.Format(domain.DateFormat), req.StartTime)
		return nil, err
	}

	// 5. Проверяем существование типа активности
	activity, err := uc.activityRepo.GetByName(ctx, req.ActivityType)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityTypeNotFound) {
			uc.logger.Warn("CreateBooking: activity type %q not found", req.ActivityType)
			return nil, ErrActivityTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get activity type: %v", err)
		return nil, fmt.Errorf("%w: failed to get activity type: %v", ErrInternal, err)
	}

	// 6. Создаем событие в Google Calendar
	// Запись подтверждается только после успешного создания события:
	// недоступность календаря прерывает бронирование
	eventID, err := uc.calendarClient.CreateEvent(ctx, uc.buildEventRequest(req, activity, durationMinutes))
	if err != nil {
		uc.logger.Error("CreateBooking: calendar insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	meetingFormat := domain.MeetingFormat(req.MeetingFormat)
	if meetingFormat == "" {
		meetingFormat = domain.MeetingOnline
	}

	var result *domain.Booking

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем активные записи этого типа на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, domain.BookingsOnDateFilter{
			Date:         req.Date,
			ActivityType: ptr.Ptr(req.ActivityType),
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.2. Проверяем, что слот свободен
		if hasOverlap(req.StartTime, durationMinutes, bookings) {
			uc.logger.Warn("CreateBooking: slot %s taken for type=%s, date=%s",
				req.StartTime, req.ActivityType, req.Date.Format(domain.DateFormat))
			return ErrSlotTaken
		}

		// 7.3. Сохраняем запись
		booking := &domain.Booking{
			UserID:                req.UserID,
			Title:                 req.Title,
			BookingDate:           req.Date,
			StartTime:             req.StartTime,
			DurationMinutes:       durationMinutes,
			Status:                domain.StatusConfirmed,
			ActivityType:          req.ActivityType,
			MeetingFormat:         meetingFormat,
			Description:           req.Description,
			Location:              req.Location,
			Subject:               req.Subject,
			GoogleCalendarEventID: ptr.Ptr(eventID),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Транзакция откатилась, а событие в календаре уже создано - подчищаем
		if delErr := uc.calendarClient.DeleteEvent(ctx, eventID); delErr != nil {
			uc.logger.Error("CreateBooking: failed to delete orphan calendar event %s: %v", eventID, delErr)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                    result.ID,
		UserID:                result.UserID,
		Title:                 result.Title,
		BookingDate:           result.BookingDate,
		StartTime:             result.StartTime,
		DurationMinutes:       result.DurationMinutes,
		Status:                string(result.Status),
		ActivityType:          result.ActivityType,
		MeetingFormat:         string(result.MeetingFormat),
		Description:           result.Description,
		Location:              result.Location,
		Subject:               result.Subject,
		GoogleCalendarEventID: result.GoogleCalendarEventID,
		CreatedAt:             result.CreatedAt,
		UpdatedAt:             result.UpdatedAt,
	}, nil
}

// buildEventRequest собирает запрос на создание события календаря
func (uc *UseCase) buildEventRequest(req *Request, activity *domain.ActivityType, durationMinutes int) googlecalendar.EventRequest {
	startMinutes, _ := req.StartTime.Minutes()

	start := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		startMinutes/60, startMinutes%60, 0, 0, uc.location)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	var description string
	if req.Description != nil {
		description = *req.Description
	}
	var location string
	if req.Location != nil {
		location = *req.Location
	}

	return googlecalendar.EventRequest{
		Title:       req.Title,
		StartTime:   start.Format(time.RFC3339),
		EndTime:     end.Format(time.RFC3339),
		Description: description,
		Location:    location,
		ColorID:     googleColorID(activity.Color),
	}
}

// googleColorID подбирает colorId события Google Calendar по цвету типа активности
var googleColorIDs = map[string]string{
	"#2563eb": "9",  // blueberry
	"#16a34a": "10", // basil
	"#dc2626": "11", // tomato
	"#ca8a04": "5",  // banana
	"#9333ea": "3",  // grape
	"#ea580c": "6",  // tangerine
	"#0d9488": "7",  // peacock
	"#db2777": "4",  // flamingo
}

func googleColorID(hexColor string) string {
	if id, ok := googleColorIDs[hexColor]; ok {
		return id
	}
	return "9"
}
