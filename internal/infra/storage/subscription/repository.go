package subscription

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/pkg/dbmetrics"
	"github.com/zumipet/ZMI-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения подписок.
// Управление подписками (апгрейд, деактивация) - внешний контур,
// движку бронирований нужен только текущий уровень.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetActiveTier возвращает уровень самой свежей активной подписки пользователя.
// Если активной подписки нет, возвращает free.
func (r *Repository) GetActiveTier(ctx context.Context, userID int64) (domain.Tier, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("tier").
		From("subscriptions").
		Where(squirrel.Eq{
			"user_id": userID,
			"status":  domain.SubscriptionActive,
		}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return "", fmt.Errorf("%w: GetActiveTier - build select query: %v", ErrBuildQuery, err)
	}

	var tier domain.Tier
	err = executor.QueryRowContext(ctx, query, args...).Scan(&tier)
	if err == sql.ErrNoRows {
		return domain.TierFree, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetActiveTier - scan tier: %v", ErrScanRow, err)
	}

	return tier, nil
}
