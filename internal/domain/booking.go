package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPendingPayment BookingStatus = "pending_payment"
	StatusConfirmed      BookingStatus = "confirmed"
	StatusCompleted      BookingStatus = "completed"
	StatusCancelled      BookingStatus = "cancelled"
)

// Booking бронирование позиции каталога.
// Создаётся инициацией в статусе pending_payment; подтверждение (после проверки
// платежа) - единственный переход в confirmed; completed выставляется внешним
// контуром исполнения заказа.
type Booking struct {
	ID       int64
	UserID   int64
	ItemID   int64
	ItemType ItemType
	PetID    *int64

	// Снимок расчёта цены на момент инициации.
	// final_price всегда равен пересчёту из собственных полей скидок
	// и после создания не редактируется.
	OriginalPrice        decimal.Decimal
	ProviderDiscount     decimal.Decimal
	SubscriptionDiscount decimal.Decimal
	CouponCode           *string
	CouponID             *int64 // заполнен только если купон был зарезервирован
	CouponDiscount       decimal.Decimal
	FinalPrice           decimal.Decimal

	Status          BookingStatus
	PaymentIntentID *string // заполняется при подтверждении

	// Наградной промокод, выпущенный при подтверждении
	RewardPromoCode     *string
	RewardPromoDiscount *int

	BookingDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanBeConfirmed возвращает true, если бронирование ожидает оплаты
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusPendingPayment
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingPayment || b.Status == StatusConfirmed
}

// IsTerminal возвращает true для конечных статусов
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// HasReservedCoupon возвращает true, если при инициации был зарезервирован купон
func (b *Booking) HasReservedCoupon() bool {
	return b.CouponID != nil
}

// FinalPriceMinorUnits возвращает итоговую цену в minor units (центах).
// Именно с этим значением сверяется сумма платёжного интента при подтверждении.
func (b *Booking) FinalPriceMinorUnits() int64 {
	return MinorUnits(b.FinalPrice)
}
