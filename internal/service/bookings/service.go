package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/booking"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/bookings/models"
)

// Service сервис для работы с записями
type Service struct {
	bookingRepo    BookingRepository
	calendarClient CalendarClient
	logger         Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	bookingRepo BookingRepository,
	calendarClient CalendarClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:    bookingRepo,
		calendarClient: calendarClient,
		logger:         logger,
	}
}

// GetByID получает запись по ID
// Пользователь может видеть только свою запись
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю записей пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetUserBookings: invalid status=%v for user=%d", req.Status, req.UserID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, filter)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет запись пользователя
//
// Зеркальное событие в Google Calendar удаляется по принципу best effort:
// недоступность календаря отмену не блокирует, событие подчистит следующий
// запуск уборки или ручное удаление
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", userID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.GoogleCalendarEventID != nil {
		if err := s.calendarClient.DeleteEvent(ctx, *booking.GoogleCalendarEventID); err != nil {
			s.logger.Warn("Cancel: failed to delete calendar event %s for booking id=%d: %v",
				*booking.GoogleCalendarEventID, bookingID, err)
		} else if err := s.bookingRepo.ClearCalendarEventID(ctx, bookingID); err != nil {
			s.logger.Warn("Cancel: failed to clear calendar event id for booking id=%d: %v", bookingID, err)
		}
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
