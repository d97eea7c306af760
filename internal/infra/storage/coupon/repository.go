package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/pkg/dbmetrics"
	"github.com/zumipet/ZMI-BookingService/pkg/psqlbuilder"
)

var couponColumns = []string{
	"id",
	"code",
	"discount_percentage",
	"valid_from",
	"valid_until",
	"usage_limit",
	"used_count",
	"applicable_type",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с купонами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория купонов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает купон по коду.
// Код нормализуется к верхнему регистру - купоны матчатся без учёта регистра.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.Eq{"code": strings.ToUpper(strings.TrimSpace(code))}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	coupon, err := scanCoupon(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan coupon: %v", ErrScanRow, err)
	}

	return coupon, nil
}

// ListActive получает все действующие купоны: окно действия открыто,
// лимит не исчерпан. Сортировка по размеру скидки (сначала большие).
func (r *Repository) ListActive(ctx context.Context, now time.Time) ([]*domain.Coupon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(couponColumns...).
		From("coupons").
		Where(squirrel.LtOrEq{"valid_from": now}).
		Where(squirrel.GtOrEq{"valid_until": now}).
		Where(squirrel.Or{
			squirrel.Eq{"usage_limit": 0},
			squirrel.Expr("used_count < usage_limit"),
		}).
		OrderBy("discount_percentage DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	coupons := make([]*domain.Coupon, 0)
	for rows.Next() {
		coupon, err := scanCoupon(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		coupons = append(coupons, coupon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return coupons, nil
}

// IncrementUsage увеличивает used_count на 1, не превышая usage_limit.
// Проверка лимита и инкремент выполняются одним условным UPDATE по общему
// счётчику: из N гонящихся подтверждений последнее оставшееся использование
// получит ровно одно. Вызывается только внутри транзакции подтверждения.
func (r *Repository) IncrementUsage(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("coupons").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Or{
			squirrel.Eq{"usage_limit": 0},
			squirrel.Expr("used_count < usage_limit"),
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageLimitReached
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCoupon(row rowScanner) (*domain.Coupon, error) {
	var coupon domain.Coupon
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&coupon.ID,
		&coupon.Code,
		&coupon.DiscountPercent,
		&coupon.ValidFrom,
		&coupon.ValidUntil,
		&coupon.UsageLimit,
		&coupon.UsedCount,
		&coupon.ApplicableType,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	coupon.CreatedAt = createdAt.Time
	coupon.UpdatedAt = updatedAt.Time

	return &coupon, nil
}
