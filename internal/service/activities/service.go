package activities

import (
	"context"
	"errors"
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	activityRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/activity"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/activities/models"
)

// Service сервис для работы с типами активностей
type Service struct {
	activityRepo ActivityTypeRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса типов активностей
func NewService(
	activityRepo ActivityTypeRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// List получает все типы активностей
func (s *Service) List(ctx context.Context) (*models.ActivityTypeListResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivityTypeList(activities), nil
}

// Create создает новый тип активности
func (s *Service) Create(ctx context.Context, req *models.CreateActivityTypeRequest) (*models.ActivityTypeResponse, error) {
	s.logger.Info("Create: creating activity type name=%q", req.Name)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	color := req.Color
	if color == "" {
		color = domain.DefaultActivityColor
	}

	created, err := s.activityRepo.Create(ctx, &domain.ActivityType{
		Name:  req.Name,
		Color: color,
	})
	if err != nil {
		if errors.Is(err, activityRepo.ErrDuplicateName) {
			s.logger.Warn("Create: activity type name=%q already exists", req.Name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created activity type id=%d", created.ID)
	return models.FromDomainActivityType(created), nil
}

// Update обновляет тип активности
//
// Переименование каскадно обновляет шаблоны расписания в той же транзакции.
// Существующие записи сохраняют историческое название типа
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateActivityTypeRequest) (*models.ActivityTypeResponse, error) {
	s.logger.Info("Update: updating activity type id=%d", id)

	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	existing, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityTypeNotFound) {
			s.logger.Warn("Update: activity type id=%d not found", id)
			return nil, ErrActivityTypeNotFound
		}
		s.logger.Error("Update: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	color := req.Color
	if color == "" {
		color = existing.Color
	}

	updated := &domain.ActivityType{
		ID:    id,
		Name:  req.Name,
		Color: color,
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.activityRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, activityRepo.ErrDuplicateName) {
				return ErrDuplicateName
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}

		if existing.Name != req.Name {
			s.logger.Info("Update: renaming activity type %q -> %q in schedules", existing.Name, req.Name)
			if err := s.scheduleRepo.RenameActivityType(txCtx, existing.Name, req.Name); err != nil {
				return fmt.Errorf("%w: Update - rename in schedules: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		s.logger.Error("Update: failed for activity type id=%d: %v", id, err)
		return nil, err
	}

	result, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload activity type id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated activity type id=%d", id)
	return models.FromDomainActivityType(result), nil
}

// Delete удаляет тип активности
// Шаблоны расписания этого типа остаются и продолжают показываться,
// записаться по ним больше нельзя
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting activity type id=%d", id)

	if err := s.activityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, activityRepo.ErrActivityTypeNotFound) {
			s.logger.Warn("Delete: activity type id=%d not found", id)
			return ErrActivityTypeNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted activity type id=%d", id)
	return nil
}
