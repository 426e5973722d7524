package get_available_slots

import (
	"context"
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/ptr"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	scheduleRepo ScheduleRepository
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: type=%s, date=%s, duration=%d",
		req.ActivityType, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Длительность по умолчанию, если клиент её не задал
	duration := req.DurationMinutes
	if duration == 0 {
		duration = domain.DefaultDurationMinutes
	}

	// 3. Получаем шаблоны расписания для типа активности
	templates, err := uc.scheduleRepo.List(ctx, domain.ScheduleFilter{
		ActivityType: ptr.Ptr(req.ActivityType),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedules: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
	}

	// 4. Генерируем временные слоты из подходящих шаблонов
	timeSlots := generateTimeSlots(templates, req.Date, duration)

	// 5. Получаем активные бронирования этого типа на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, domain.BookingsOnDateFilter{
		Date:         req.Date,
		ActivityType: ptr.Ptr(req.ActivityType),
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Убираем занятые слоты
	freeSlots := filterBookedSlots(timeSlots, duration, bookings)

	// 7. На сегодняшнюю дату прошедшие слоты не предлагаем
	freeSlots = filterPastSlots(freeSlots, req.Date, uc.timeProvider.Now())

	slots := make([]Slot, len(freeSlots))
	for i, start := range freeSlots {
		slots[i] = Slot{
			StartTime:       start,
			DurationMinutes: duration,
			ActivityType:    req.ActivityType,
		}
	}

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for type=%s, date=%s",
		len(slots), len(timeSlots), req.ActivityType, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		ActivityType:    req.ActivityType,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}
