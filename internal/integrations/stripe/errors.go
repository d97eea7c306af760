package stripe

import "errors"

var (
	// ErrInvalidAmount возвращается при неположительной сумме платежа
	ErrInvalidAmount = errors.New("stripe client: amount must be positive")

	// ErrAmountTooLarge возвращается, когда сумма превышает настроенный потолок
	ErrAmountTooLarge = errors.New("stripe client: amount exceeds maximum allowed")

	// ErrIntentNotFound возвращается, когда платёжный интент не найден
	ErrIntentNotFound = errors.New("stripe client: payment intent not found")

	// ErrGatewayUnavailable возвращается при сетевых ошибках и таймаутах шлюза.
	// Отличается от локальных ошибок валидации - вызывающая сторона может повторить запрос.
	ErrGatewayUnavailable = errors.New("stripe client: payment gateway unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("stripe client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")
)
