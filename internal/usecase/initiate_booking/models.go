package initiate_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на инициацию бронирования
type Request struct {
	UserID      int64      // ID пользователя
	ItemID      int64      // ID позиции каталога
	ItemType    string     // "service" или "event"
	CouponCode  *string    // Промокод (опционально)
	PetID       *int64     // ID питомца (опционально)
	BookingDate *time.Time // Дата бронирования (опционально, по умолчанию - сейчас)
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID            int64
	OriginalPrice        decimal.Decimal
	ProviderDiscount     decimal.Decimal
	SubscriptionDiscount decimal.Decimal
	CouponDiscount       decimal.Decimal
	FinalPrice           decimal.Decimal // округлена до 2 знаков
	Status               string          // всегда "pending_payment"
	BookingDate          time.Time
	CreatedAt            time.Time
}
