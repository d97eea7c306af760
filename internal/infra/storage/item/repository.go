package item

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/pkg/dbmetrics"
	"github.com/zumipet/ZMI-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для чтения позиций каталога.
// Услуги и события хранятся в отдельных таблицах с одинаковым набором
// ценовых колонок; таблица выбирается по типу позиции.
// Каталогом управляет внешний контур, здесь только чтение.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает позицию каталога по ID и типу
func (r *Repository) GetByID(ctx context.Context, id int64, itemType domain.ItemType) (*domain.Item, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	table := "services"
	if itemType == domain.ItemTypeEvent {
		table = "events"
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"title",
		"provider",
		"price",
		"provider_discount",
		"is_premium",
		"image_url",
	).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	item := domain.Item{Type: itemType}
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Title,
		&item.Provider,
		&item.Price,
		&item.ProviderDiscountPercent,
		&item.IsPremiumOnly,
		&item.ImageURL,
	)

	if err == sql.ErrNoRows {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan item: %v", ErrScanRow, err)
	}

	return &item, nil
}
