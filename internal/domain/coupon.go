package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CouponType область применимости купона
type CouponType string

const (
	CouponTypeAll     CouponType = "all"
	CouponTypeService CouponType = "service"
	CouponTypeEvent   CouponType = "event"
)

// Coupon предзаведённый промокод с окном действия и лимитом использований.
// Инвариант: used_count <= usage_limit при usage_limit > 0.
// used_count увеличивается ровно один раз на каждое подтверждённое бронирование,
// зарезервировавшее купон - никогда на этапе инициации.
type Coupon struct {
	ID              int64
	Code            string
	DiscountPercent decimal.Decimal // 0-100
	ValidFrom       time.Time
	ValidUntil      time.Time
	UsageLimit      int // 0 = без ограничений
	UsedCount       int
	ApplicableType  CouponType
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsActiveAt проверяет, что купон действует в указанный момент
func (c *Coupon) IsActiveAt(now time.Time) bool {
	return !now.Before(c.ValidFrom) && !now.After(c.ValidUntil)
}

// HasRemainingUses проверяет, что лимит использований не исчерпан
func (c *Coupon) HasRemainingUses() bool {
	return c.UsageLimit == 0 || c.UsedCount < c.UsageLimit
}

// AppliesTo проверяет применимость купона к типу позиции
func (c *Coupon) AppliesTo(t ItemType) bool {
	return c.ApplicableType == CouponTypeAll || string(c.ApplicableType) == string(t)
}

// IsRedeemableFor объединяет все проверки применимости купона.
// Причина отказа наружу не раскрывается - наружу уходит один общий сигнал.
func (c *Coupon) IsRedeemableFor(t ItemType, now time.Time) bool {
	return c.IsActiveAt(now) && c.HasRemainingUses() && c.AppliesTo(t)
}

// RemainingUses возвращает оставшееся число использований, nil - без ограничений
func (c *Coupon) RemainingUses() *int {
	if c.UsageLimit == 0 {
		return nil
	}
	remaining := c.UsageLimit - c.UsedCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}
