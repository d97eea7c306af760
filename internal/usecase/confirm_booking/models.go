package confirm_booking

// Request модель запроса на подтверждение бронирования
type Request struct {
	UserID          int64  // ID пользователя
	BookingID       int64  // ID бронирования
	PaymentIntentID string // ID платёжного интента, сообщённый клиентом
}

// Response модель ответа с подтверждённым бронированием
type Response struct {
	BookingID           int64
	Status              string // всегда "confirmed"
	PaymentIntentID     string
	RewardPromoCode     string
	RewardPromoDiscount int
}
