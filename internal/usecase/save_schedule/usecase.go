package save_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	scheduleRepo "github.com/chayanin-p/TBN-AppointmentService/internal/infra/storage/schedule"
)

// UseCase use case для сохранения шаблонов расписания
type UseCase struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute выполняет use case сохранения расписания
//
// Редактирование устроено как замена: старый шаблон удаляется и на его
// месте создаются новые, всё в одной сериализуемой транзакции. Проверка
// пересечений и создание видят согласованный снимок таблицы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SaveSchedule: type=%s, weekdays=%v, time=%s-%s",
		req.ActivityType, req.Weekdays, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SaveSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Определяем дни недели создаваемых шаблонов
	weekdays := make([]domain.Weekday, 0, len(req.Weekdays))
	if req.Date != nil {
		weekdays = append(weekdays, domain.WeekdayOf(*req.Date))
	} else {
		for _, wd := range req.Weekdays {
			weekdays = append(weekdays, domain.Weekday(wd))
		}
	}

	newRange := templateRange(req)

	var created []Template

	// 3. Замена и создание в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. При редактировании удаляем заменяемый шаблон
		if req.ReplacesID != nil {
			if _, err := uc.scheduleRepo.GetByID(txCtx, *req.ReplacesID); err != nil {
				if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
					uc.logger.Warn("SaveSchedule: replaced schedule id=%d not found", *req.ReplacesID)
					return ErrScheduleNotFound
				}
				uc.logger.Error("SaveSchedule: failed to get schedule id=%d: %v", *req.ReplacesID, err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}

			if err := uc.scheduleRepo.Delete(txCtx, *req.ReplacesID); err != nil {
				uc.logger.Error("SaveSchedule: failed to delete schedule id=%d: %v", *req.ReplacesID, err)
				return fmt.Errorf("%w: failed to delete schedule: %v", ErrInternal, err)
			}
		}

		// 3.2. Получаем существующие шаблоны с блокировкой (FOR UPDATE)
		existing, err := uc.scheduleRepo.List(txCtx, domain.ScheduleFilter{})
		if err != nil {
			uc.logger.Error("SaveSchedule: failed to list schedules: %v", err)
			return fmt.Errorf("%w: failed to list schedules: %v", ErrInternal, err)
		}

		// 3.3. Для каждого дня недели проверяем пересечения и создаем шаблон
		for _, weekday := range weekdays {
			if !newRange.IsPoint() {
				if conflict := findConflict(newRange, weekday, req.Date, req.ReplacesID, existing); conflict != nil {
					uc.logger.Warn("SaveSchedule: conflict on %s with %s (%s)",
						weekday, conflict.Range, conflict.ActivityType)
					return conflict
				}
			}

			template := &domain.ScheduleTemplate{
				ActivityType: req.ActivityType,
				Weekday:      weekday,
				StartTime:    newRange.Start,
				EndTime:      newRange.End,
				Date:         req.Date,
			}

			saved, err := uc.scheduleRepo.Create(txCtx, template)
			if err != nil {
				uc.logger.Error("SaveSchedule: failed to create schedule: %v", err)
				return fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
			}

			created = append(created, Template{
				ID:           saved.ID,
				ActivityType: saved.ActivityType,
				Weekday:      string(saved.Weekday),
				StartTime:    saved.StartTime,
				EndTime:      saved.EndTime,
				Date:         saved.Date,
				CreatedDate:  saved.CreatedDate,
			})
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SaveSchedule: created %d templates for type=%s", len(created), req.ActivityType)

	return &Response{Templates: created}, nil
}
