package preview_price

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("preview_price: invalid input data")

	// ErrItemNotFound возвращается, когда позиция каталога не найдена
	ErrItemNotFound = errors.New("preview_price: item not found")

	// ErrPremiumRequired возвращается для premium-only позиций без premium подписки
	ErrPremiumRequired = errors.New("preview_price: premium subscription required")

	// ErrInvalidCoupon возвращается при недействительном купоне.
	// Один общий сигнал для всех причин отказа (истёк, исчерпан, не тот тип) -
	// детали не раскрываются, чтобы не допустить перебор кодов.
	ErrInvalidCoupon = errors.New("preview_price: invalid or expired promo code")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("preview_price: internal error")
)
