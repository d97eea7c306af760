package preview_price

import (
	"github.com/shopspring/decimal"
)

// Request модель запроса на предварительный расчёт цены
type Request struct {
	UserID     int64   // ID пользователя (для определения уровня подписки)
	ItemID     int64   // ID позиции каталога
	ItemType   string  // "service" или "event"
	CouponCode *string // Промокод (опционально)
}

// Response модель ответа с разбивкой цены.
// Ничего не персистится - это чистый расчёт.
type Response struct {
	OriginalPrice        decimal.Decimal
	ProviderDiscount     decimal.Decimal
	SubscriptionDiscount decimal.Decimal
	CouponDiscount       decimal.Decimal
	FinalPrice           decimal.Decimal // округлена до 2 знаков
}
