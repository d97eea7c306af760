package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

func activeCoupon() domain.Coupon {
	now := time.Now()
	return domain.Coupon{
		ID:              1,
		Code:            "ZUMI10",
		DiscountPercent: decimal.NewFromInt(10),
		ValidFrom:       now.Add(-time.Hour),
		ValidUntil:      now.Add(time.Hour),
		UsageLimit:      5,
		UsedCount:       0,
		ApplicableType:  domain.CouponTypeAll,
	}
}

func TestCoupon_IsActiveAt(t *testing.T) {
	now := time.Now()
	c := activeCoupon()

	assert.True(t, c.IsActiveAt(now))
	assert.True(t, c.IsActiveAt(c.ValidFrom), "границы окна включительны")
	assert.True(t, c.IsActiveAt(c.ValidUntil))
	assert.False(t, c.IsActiveAt(c.ValidFrom.Add(-time.Second)))
	assert.False(t, c.IsActiveAt(c.ValidUntil.Add(time.Second)))
}

func TestCoupon_HasRemainingUses(t *testing.T) {
	c := activeCoupon()

	c.UsageLimit = 0
	c.UsedCount = 1000
	assert.True(t, c.HasRemainingUses(), "нулевой лимит = без ограничений")

	c.UsageLimit = 3
	c.UsedCount = 2
	assert.True(t, c.HasRemainingUses())

	c.UsedCount = 3
	assert.False(t, c.HasRemainingUses())
}

func TestCoupon_AppliesTo(t *testing.T) {
	c := activeCoupon()

	c.ApplicableType = domain.CouponTypeAll
	assert.True(t, c.AppliesTo(domain.ItemTypeService))
	assert.True(t, c.AppliesTo(domain.ItemTypeEvent))

	c.ApplicableType = domain.CouponTypeService
	assert.True(t, c.AppliesTo(domain.ItemTypeService))
	assert.False(t, c.AppliesTo(domain.ItemTypeEvent))

	c.ApplicableType = domain.CouponTypeEvent
	assert.False(t, c.AppliesTo(domain.ItemTypeService))
	assert.True(t, c.AppliesTo(domain.ItemTypeEvent))
}

func TestCoupon_RemainingUses(t *testing.T) {
	c := activeCoupon()

	c.UsageLimit = 0
	assert.Nil(t, c.RemainingUses())

	c.UsageLimit = 5
	c.UsedCount = 2
	remaining := c.RemainingUses()
	assert.NotNil(t, remaining)
	assert.Equal(t, 3, *remaining)

	c.UsedCount = 7
	remaining = c.RemainingUses()
	assert.Equal(t, 0, *remaining)
}
