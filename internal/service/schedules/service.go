package schedules

import (
	"context"
	"errors"
	"fmt"
	"sort"

	scheduleRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/schedule"
	"github.com/chayanin-p/TBN-AppointmentService/internal/service/schedules/models"
)

// Service сервис для работы с шаблонами расписания
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// List получает шаблоны расписания с опциональной фильтрацией
// Сортировка для отображения: дни недели с понедельника, внутри дня по
// времени начала
func (s *Service) List(ctx context.Context, req *models.ListSchedulesRequest) (*models.ScheduleListResponse, error) {
	s.logger.Info("List: fetching schedules, type=%v, weekday=%v", req.ActivityType, req.Weekday)

	templates, err := s.scheduleRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sort.SliceStable(templates, func(i, j int) bool {
		if templates[i].Weekday != templates[j].Weekday {
			return templates[i].Weekday.OrderIndex() < templates[j].Weekday.OrderIndex()
		}
		return templates[i].StartTime.IsBefore(templates[j].StartTime)
	})

	s.logger.Info("List: fetched %d schedules", len(templates))
	return models.FromDomainScheduleList(templates), nil
}

// GetByID получает шаблон по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	template, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(template), nil
}

// Delete удаляет шаблон расписания
// Существующие записи не трогаем: они ссылаются на тип активности, а не
// на шаблон
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting schedule id=%d", id)

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%d", id)
	return nil
}
