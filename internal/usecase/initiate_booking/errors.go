package initiate_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("initiate_booking: invalid input data")

	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("initiate_booking: item not found")

	// ErrPremiumRequired возвращается для premium-only позиций без premium подписки
	ErrPremiumRequired = errors.New("initiate_booking: premium subscription required")

	// ErrInvalidCoupon возвращается при недействительном купоне.
	// Один общий сигнал для всех причин отказа - детали не раскрываются.
	ErrInvalidCoupon = errors.New("initiate_booking: invalid or expired promo code")

	// ErrNonPositivePrice возвращается, когда итоговая цена после скидок не положительна.
	// Бронирование с нулевой ценой не проходит через платёжный шлюз.
	ErrNonPositivePrice = errors.New("initiate_booking: final price must be positive")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("initiate_booking: internal error")
)
