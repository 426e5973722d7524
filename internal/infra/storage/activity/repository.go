package activity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/dbmetrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/psqlbuilder"
)

// Код ошибки unique_violation в PostgreSQL
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с типами активностей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория типов активностей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тип активности
func (r *Repository) Create(ctx context.Context, a *domain.ActivityType) (*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("activity_types").
		Columns("name", "color").
		Values(a.Name, a.Color).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает тип активности по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "color", "created_at", "updated_at").
		From("activity_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.ActivityType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Name, &a.Color, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrActivityTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan activity type: %v", ErrScanRow, err)
	}

	return &a, nil
}

// GetByName получает тип активности по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "color", "created_at", "updated_at").
		From("activity_types").
		Where(squirrel.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.ActivityType
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID, &a.Name, &a.Color, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrActivityTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan activity type: %v", ErrScanRow, err)
	}

	return &a, nil
}

// List получает все типы активностей в алфавитном порядке
func (r *Repository) List(ctx context.Context) ([]*domain.ActivityType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "color", "created_at", "updated_at").
		From("activity_types").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.ActivityType, 0)
	for rows.Next() {
		var a domain.ActivityType
		if err := rows.Scan(&a.ID, &a.Name, &a.Color, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return result, nil
}

// Update обновляет имя и цвет типа активности
func (r *Repository) Update(ctx context.Context, a *domain.ActivityType) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("activity_types").
		Set("name", a.Name).
		Set("color", a.Color).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateName
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrActivityTypeNotFound
	}

	return nil
}

// Delete удаляет тип активности по ID
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("activity_types").
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
		return ErrActivityTypeNotFound
	}

	return nil
}
