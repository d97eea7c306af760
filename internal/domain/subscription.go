package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier уровень подписки пользователя
type Tier string

const (
	TierFree    Tier = "free"
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// DiscountPercent возвращает скидку уровня подписки в процентах.
// Неизвестный уровень трактуется как free.
func (t Tier) DiscountPercent() decimal.Decimal {
	switch t {
	case TierBasic:
		return decimal.NewFromInt(TierBasicDiscountPercent)
	case TierPremium:
		return decimal.NewFromInt(TierPremiumDiscountPercent)
	default:
		return decimal.NewFromInt(TierFreeDiscountPercent)
	}
}

// SubscriptionStatus статус подписки
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionInactive SubscriptionStatus = "inactive"
)

// Subscription подписка пользователя.
// При расчёте цены учитывается только самая свежая активная подписка.
type Subscription struct {
	ID        int64
	UserID    int64
	Tier      Tier
	Status    SubscriptionStatus
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
}
