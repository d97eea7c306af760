package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrPremiumRequired возвращается при попытке рассчитать цену premium-only позиции
// для пользователя без premium подписки
var ErrPremiumRequired = errors.New("domain: premium subscription required")

var (
	hundred     = decimal.NewFromInt(100)
	one         = decimal.NewFromInt(1)
	minorFactor = decimal.NewFromInt(100)
)

// PriceBreakdown результат расчёта цены.
// FinalPrice хранится с полной точностью; округление до 2 знаков
// выполняется только для отображения.
type PriceBreakdown struct {
	OriginalPrice        decimal.Decimal
	ProviderDiscount     decimal.Decimal
	SubscriptionDiscount decimal.Decimal
	CouponDiscount       decimal.Decimal
	FinalPrice           decimal.Decimal
}

// DisplayFinalPrice возвращает итоговую цену, округлённую до 2 знаков
func (p *PriceBreakdown) DisplayFinalPrice() decimal.Decimal {
	return p.FinalPrice.Round(2)
}

// FinalPriceMinorUnits возвращает итоговую цену в minor units
func (p *PriceBreakdown) FinalPriceMinorUnits() int64 {
	return MinorUnits(p.FinalPrice)
}

// MinorUnits конвертирует сумму в основной валюте в minor units: round(amount * 100)
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorFactor).Round(0).IntPart()
}

// QuoteItem рассчитывает цену позиции для уровня подписки и (уже проверенного)
// купона. Чистая функция, без побочных эффектов.
//
// Алгоритм:
//  1. premium-only позиции доступны только пользователям с premium подпиской -
//     проверяется до любой математики и до проверки купона;
//  2. сначала применяется скидка поставщика;
//  3. затем большая из скидок подписки и купона - скидки не суммируются,
//     покупатель получает одну лучшую;
//  4. отрицательный результат обрезается до нуля.
func QuoteItem(item *Item, tier Tier, coupon *Coupon) (*PriceBreakdown, error) {
	if item.IsPremiumOnly && tier != TierPremium {
		return nil, ErrPremiumRequired
	}

	subscriptionDiscount := tier.DiscountPercent()

	couponDiscount := decimal.Zero
	if coupon != nil {
		couponDiscount = coupon.DiscountPercent
	}

	afterProvider := item.Price.Mul(one.Sub(item.ProviderDiscountPercent.Div(hundred)))

	best := subscriptionDiscount
	if couponDiscount.GreaterThan(best) {
		best = couponDiscount
	}

	finalPrice := afterProvider.Mul(one.Sub(best.Div(hundred)))
	if finalPrice.IsNegative() {
		finalPrice = decimal.Zero
	}

	return &PriceBreakdown{
		OriginalPrice:        item.Price,
		ProviderDiscount:     item.ProviderDiscountPercent,
		SubscriptionDiscount: subscriptionDiscount,
		CouponDiscount:       couponDiscount,
		FinalPrice:           finalPrice,
	}, nil
}
