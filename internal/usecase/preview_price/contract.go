package preview_price

import (
	"context"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

// ItemRepository интерфейс репозитория каталога
type ItemRepository interface {
	GetByID(ctx context.Context, id int64, itemType domain.ItemType) (*domain.Item, error)
}

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	GetActiveTier(ctx context.Context, userID int64) (domain.Tier, error)
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
