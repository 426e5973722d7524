package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/chayanin-p/TBN-AppointmentService/internal/domain"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/dbmetrics"
	"github.com/chayanin-p/TBN-AppointmentService/pkg/psqlbuilder"
)

// Repository репозиторий push-подписок пользователей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetPushSubscription получает push-подписку пользователя
func (r *Repository) GetPushSubscription(ctx context.Context, userID int64) (*domain.PushSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("user_id", "endpoint", "p256dh", "auth", "updated_at").
		From("push_subscriptions").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetPushSubscription - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.PushSubscription
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSubscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPushSubscription - scan subscription: %v", ErrScanRow, err)
	}

	return &s, nil
}

// SavePushSubscription сохраняет или обновляет push-подписку пользователя
// Подписка одна на пользователя: повторная регистрация затирает старую
func (r *Repository) SavePushSubscription(ctx context.Context, s *domain.PushSubscription) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("push_subscriptions").
		Columns("user_id", "endpoint", "p256dh", "auth").
		Values(s.UserID, s.Endpoint, s.P256dh, s.Auth).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET endpoint = EXCLUDED.endpoint, p256dh = EXCLUDED.p256dh, auth = EXCLUDED.auth, updated_at = NOW()").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SavePushSubscription - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SavePushSubscription - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// DeletePushSubscription удаляет push-подписку пользователя
// Вызывается рассыльщиком, когда endpoint отвечает 404/410
func (r *Repository) DeletePushSubscription(ctx context.Context, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("push_subscriptions").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeletePushSubscription - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeletePushSubscription - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}
