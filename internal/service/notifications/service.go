package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	notificationRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/notification"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/notifications/models"
)

// Service сервис для работы с будильниками и push-подписками
type Service struct {
	notificationRepo NotificationRepository
	userRepo         UserRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса будильников
func NewService(
	notificationRepo NotificationRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		logger:           logger,
	}
}

// List получает будильники пользователя, новые сверху
func (s *Service) List(ctx context.Context, userID int64) (*models.NotificationListResponse, error) {
	notifications, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(notifications), nil
}

// Create создает новый будильник
func (s *Service) Create(ctx context.Context, req *models.SaveNotificationRequest) (*models.NotificationResponse, error) {
	s.logger.Info("Create: creating notification for user=%d, time=%s", req.UserID, req.Time)

	notification, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Create: validation failed for user=%d: %v", req.UserID, err)
		return nil, err
	}

	created, err := s.notificationRepo.Create(ctx, notification)
	if err != nil {
		s.logger.Error("Create: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created notification id=%d", created.ID)
	return models.FromDomainNotification(created), nil
}

// Update обновляет будильник пользователя
// Чужой будильник неотличим от несуществующего
func (s *Service) Update(ctx context.Context, id int64, req *models.SaveNotificationRequest) (*models.NotificationResponse, error) {
	s.logger.Info("Update: updating notification id=%d for user=%d", id, req.UserID)

	notification, err := s.validate(req)
	if err != nil {
		s.logger.Warn("Update: validation failed for notification id=%d: %v", id, err)
		return nil, err
	}
	notification.ID = id

	if err := s.notificationRepo.Update(ctx, notification); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("Update: notification id=%d not found for user=%d", id, req.UserID)
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("Update: repository error for notification id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	updated, err := s.notificationRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload notification id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated notification id=%d", id)
	return models.FromDomainNotification(updated), nil
}

// Delete удаляет будильник пользователя
func (s *Service) Delete(ctx context.Context, id, userID int64) error {
	s.logger.Info("Delete: deleting notification id=%d for user=%d", id, userID)

	if err := s.notificationRepo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("Delete: notification id=%d not found for user=%d", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("Delete: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted notification id=%d", id)
	return nil
}

// Subscribe регистрирует push-подписку браузера пользователя
func (s *Service) Subscribe(ctx context.Context, req *models.SubscribeRequest) error {
	s.logger.Info("Subscribe: saving push subscription for user=%d", req.UserID)

	if req.Endpoint == "" || req.P256dh == "" || req.Auth == "" {
		return fmt.Errorf("%w: endpoint, p256dh and auth are required", ErrInvalidInput)
	}

	err := s.userRepo.SavePushSubscription(ctx, &domain.PushSubscription{
		UserID:   req.UserID,
		Endpoint: req.Endpoint,
		P256dh:   req.P256dh,
		Auth:     req.Auth,
	})
	if err != nil {
		s.logger.Error("Subscribe: repository error for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Unsubscribe удаляет push-подписку пользователя
func (s *Service) Unsubscribe(ctx context.Context, userID int64) error {
	s.logger.Info("Unsubscribe: deleting push subscription for user=%d", userID)

	if err := s.userRepo.DeletePushSubscription(ctx, userID); err != nil {
		s.logger.Error("Unsubscribe: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Unsubscribe - repository error: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) validate(req *models.SaveNotificationRequest) (*domain.CustomNotification, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	notification, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if err := notification.Time.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	for _, day := range notification.RepeatDays {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: repeat day %d out of range", ErrInvalidInput, day)
		}
	}

	return notification, nil
}
