package confirm_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrAccessDenied возвращается при попытке подтвердить чужое бронирование
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrAlreadyConfirmed возвращается при повторном подтверждении.
	// Этот отказ и делает Confirm безопасным для ретраев: купон не списывается
	// дважды, наградной промокод не выпускается дважды.
	ErrAlreadyConfirmed = errors.New("confirm_booking: booking already confirmed")

	// ErrInvalidStatus возвращается для отменённых и завершённых бронирований
	ErrInvalidStatus = errors.New("confirm_booking: booking is not awaiting payment")

	// ErrPaymentNotSucceeded возвращается, когда платёж не в статусе succeeded
	ErrPaymentNotSucceeded = errors.New("confirm_booking: payment not succeeded")

	// ErrAmountMismatch возвращается при расхождении суммы платежа с ценой
	// бронирования. Это отказ по целостности, а не повторяемая ошибка:
	// клиент оплатил не ту сумму, которая была зафиксирована при инициации.
	ErrAmountMismatch = errors.New("confirm_booking: payment amount mismatch")

	// ErrCouponExhausted возвращается, когда зарезервированный купон исчерпан
	// другим подтверждением между инициацией и подтверждением
	ErrCouponExhausted = errors.New("confirm_booking: coupon usage limit reached")

	// ErrPaymentGateway возвращается при недоступности платёжного шлюза.
	// Транзакция откатывается, бронирование остаётся в pending_payment -
	// вызывающая сторона может повторить подтверждение.
	ErrPaymentGateway = errors.New("confirm_booking: payment gateway error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
