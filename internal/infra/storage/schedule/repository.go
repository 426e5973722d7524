package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/dbmetrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"activity_type",
	"weekday",
	"start_time",
	"end_time",
	"date",
	"created_date",
}

// Repository репозиторий для работы с шаблонами расписания
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый шаблон расписания
func (r *Repository) Create(ctx context.Context, t *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns("activity_type", "weekday", "start_time", "end_time", "date").
		Values(t.ActivityType, t.Weekday, t.StartTime, t.EndTime, t.Date).
		Suffix("RETURNING id, created_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedDate)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает шаблон по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return t, nil
}

// List получает шаблоны с опциональной фильтрацией по типу и дню недели
// Сортировка: сначала новые по дате создания, внутри - по времени начала
func (r *Repository) List(ctx context.Context, filter domain.ScheduleFilter) ([]*domain.ScheduleTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		OrderBy("created_date DESC, start_time ASC")

	if filter.ActivityType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"activity_type": *filter.ActivityType})
	}
	if filter.Weekday != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"weekday": *filter.Weekday})
	}

	// Внутри транзакции блокируем строки - проверка пересечений при
	// сохранении не должна гоняться с параллельным сохранением
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// Delete удаляет шаблон по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}

// RenameActivityType переименовывает тип активности во всех шаблонах
// Вызывается сервисом типов активностей внутри транзакции переименования
func (r *Repository) RenameActivityType(ctx context.Context, oldName, newName string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("activity_type", newName).
		Where(squirrel.Eq{"activity_type": oldName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RenameActivityType - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RenameActivityType - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSchedule(row rowScanner) (*domain.ScheduleTemplate, error) {
	var t domain.ScheduleTemplate
	err := row.Scan(
		&t.ID,
		&t.ActivityType,
		&t.Weekday,
		&t.StartTime,
		&t.EndTime,
		&t.Date,
		&t.CreatedDate,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func scanSchedules(rows *sql.Rows) ([]*domain.ScheduleTemplate, error) {
	templates := make([]*domain.ScheduleTemplate, 0)
	for rows.Next() {
		t, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan schedule row: %v", ErrScanRow, err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate schedule rows: %v", ErrExecQuery, err)
	}
	return templates, nil
}
