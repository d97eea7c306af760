package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

func testItem(price, providerDiscount string, premiumOnly bool) *domain.Item {
	return &domain.Item{
		ID:                      1,
		Type:                    domain.ItemTypeService,
		Title:                   "Груминг",
		Provider:                "Happy Paws",
		Price:                   decimal.RequireFromString(price),
		ProviderDiscountPercent: decimal.RequireFromString(providerDiscount),
		IsPremiumOnly:           premiumOnly,
	}
}

func testCoupon(discount string) *domain.Coupon {
	now := time.Now()
	return &domain.Coupon{
		ID:              7,
		Code:            "PETS20",
		DiscountPercent: decimal.RequireFromString(discount),
		ValidFrom:       now.Add(-24 * time.Hour),
		ValidUntil:      now.Add(24 * time.Hour),
		ApplicableType:  domain.CouponTypeAll,
	}
}

// Скидка поставщика применяется первой, затем большая из скидок
// подписки и купона. 100 * 0.9 * 0.8 = 72.
func TestQuoteItem_PremiumSubscription(t *testing.T) {
	item := testItem("100", "10", false)

	breakdown, err := domain.QuoteItem(item, domain.TierPremium, nil)
	require.NoError(t, err)

	assert.Equal(t, "72.00", breakdown.DisplayFinalPrice().StringFixed(2))
	assert.Equal(t, "20", breakdown.SubscriptionDiscount.String())
	assert.Equal(t, "0", breakdown.CouponDiscount.String())
}

func TestQuoteItem_CouponBeatsFreeTier(t *testing.T) {
	item := testItem("100", "10", false)

	breakdown, err := domain.QuoteItem(item, domain.TierFree, testCoupon("20"))
	require.NoError(t, err)

	// Та же итоговая цена, что и у premium без купона
	assert.Equal(t, "72.00", breakdown.DisplayFinalPrice().StringFixed(2))
	assert.Equal(t, "0", breakdown.SubscriptionDiscount.String())
	assert.Equal(t, "20", breakdown.CouponDiscount.String())
}

// Скидки не суммируются - применяется одна лучшая
func TestQuoteItem_BestDiscountWins(t *testing.T) {
	item := testItem("100", "0", false)

	// premium 20% > купон 15%
	breakdown, err := domain.QuoteItem(item, domain.TierPremium, testCoupon("15"))
	require.NoError(t, err)
	assert.Equal(t, "80.00", breakdown.DisplayFinalPrice().StringFixed(2))

	// купон 30% > basic 10%
	breakdown, err = domain.QuoteItem(item, domain.TierBasic, testCoupon("30"))
	require.NoError(t, err)
	assert.Equal(t, "70.00", breakdown.DisplayFinalPrice().StringFixed(2))
}

func TestQuoteItem_PremiumOnlyGate(t *testing.T) {
	item := testItem("100", "0", true)

	for _, tier := range []domain.Tier{domain.TierFree, domain.TierBasic} {
		_, err := domain.QuoteItem(item, tier, nil)
		assert.ErrorIs(t, err, domain.ErrPremiumRequired, "tier=%s", tier)
	}

	breakdown, err := domain.QuoteItem(item, domain.TierPremium, nil)
	require.NoError(t, err)
	assert.Equal(t, "80.00", breakdown.DisplayFinalPrice().StringFixed(2))
}

// Гейт по premium проверяется до применимости купона: даже идеальный купон
// не открывает premium-only позицию
func TestQuoteItem_PremiumGateBeforeCoupon(t *testing.T) {
	item := testItem("100", "0", true)

	_, err := domain.QuoteItem(item, domain.TierFree, testCoupon("30"))
	assert.ErrorIs(t, err, domain.ErrPremiumRequired)
}

func TestQuoteItem_ClampsNegativeToZero(t *testing.T) {
	item := testItem("100", "100", false)

	breakdown, err := domain.QuoteItem(item, domain.TierPremium, nil)
	require.NoError(t, err)
	assert.True(t, breakdown.FinalPrice.IsZero())
}

// Внутренняя цена хранится с полной точностью, округляется только отображение
func TestQuoteItem_FullPrecisionInternally(t *testing.T) {
	item := testItem("99.99", "7", false)

	breakdown, err := domain.QuoteItem(item, domain.TierBasic, nil)
	require.NoError(t, err)

	// 99.99 * 0.93 * 0.9 = 83.69163
	assert.Equal(t, "83.69163", breakdown.FinalPrice.String())
	assert.Equal(t, "83.69", breakdown.DisplayFinalPrice().StringFixed(2))
	assert.Equal(t, int64(8369), breakdown.FinalPriceMinorUnits())
}

func TestMinorUnits_Rounding(t *testing.T) {
	assert.Equal(t, int64(10000), domain.MinorUnits(decimal.RequireFromString("100")))
	assert.Equal(t, int64(7250), domain.MinorUnits(decimal.RequireFromString("72.495")))
	assert.Equal(t, int64(1), domain.MinorUnits(decimal.RequireFromString("0.005")))
}
