package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/dbmetrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/psqlbuilder"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/types"
)

var notificationColumns = []string{
	"id",
	"user_id",
	"title",
	"alarm_time",
	"is_enabled",
	"repeat_days",
	"date",
	"created_at",
}

// Repository репозиторий для работы с пользовательскими будильниками
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый будильник
func (r *Repository) Create(ctx context.Context, n *domain.CustomNotification) (*domain.CustomNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("custom_notifications").
		Columns("user_id", "title", "alarm_time", "is_enabled", "repeat_days", "date").
		Values(n.UserID, n.Title, n.Time, n.IsEnabled, pq.Array(n.RepeatDays), n.Date).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return n, nil
}

// GetByID получает будильник по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.CustomNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("custom_notifications").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	n, err := scanNotification(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotificationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan notification: %v", ErrScanRow, err)
	}

	return n, nil
}

// ListByUser получает будильники пользователя, новые сверху
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.CustomNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("custom_notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// ListEnabledByTime получает все включенные будильники с точным совпадением
// времени - основной запрос cron-рассыльщика
func (r *Repository) ListEnabledByTime(ctx context.Context, alarmTime types.TimeString) ([]*domain.CustomNotification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(notificationColumns...).
		From("custom_notifications").
		Where(squirrel.Eq{"is_enabled": true, "alarm_time": alarmTime}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabledByTime - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListEnabledByTime - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

// Update обновляет будильник целиком
func (r *Repository) Update(ctx context.Context, n *domain.CustomNotification) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("custom_notifications").
		Set("title", n.Title).
		Set("alarm_time", n.Time).
		Set("is_enabled", n.IsEnabled).
		Set("repeat_days", pq.Array(n.RepeatDays)).
		Set("date", n.Date).
		Where(squirrel.Eq{"id": n.ID, "user_id": n.UserID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// Delete удаляет будильник пользователя
func (r *Repository) Delete(ctx context.Context, id, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("custom_notifications").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
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
		return ErrNotificationNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(row rowScanner) (*domain.CustomNotification, error) {
	var n domain.CustomNotification
	var repeatDays pq.Int64Array

	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Time,
		&n.IsEnabled,
		&repeatDays,
		&n.Date,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(repeatDays) > 0 {
		n.RepeatDays = make([]int, len(repeatDays))
		for i, d := range repeatDays {
			n.RepeatDays[i] = int(d)
		}
	}

	return &n, nil
}

func scanNotifications(rows *sql.Rows) ([]*domain.CustomNotification, error) {
	result := make([]*domain.CustomNotification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan notification row: %v", ErrScanRow, err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate notification rows: %v", ErrExecQuery, err)
	}
	return result, nil
}
