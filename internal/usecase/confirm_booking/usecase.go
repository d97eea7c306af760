package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	bookingRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/booking"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
)

// UseCase use case подтверждения бронирования.
// Проверяет платёж на стороне шлюза, списывает использование купона,
// выпускает наградной промокод и переводит бронирование в confirmed -
// всё одним атомарным блоком.
type UseCase struct {
	bookingRepo BookingRepository
	couponRepo  CouponRepository
	gateway     PaymentGateway
	rewards     RewardIssuer
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	couponRepo CouponRepository,
	gateway PaymentGateway,
	rewards RewardIssuer,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		couponRepo:  couponRepo,
		gateway:     gateway,
		rewards:     rewards,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет подтверждение бронирования.
// Любая ошибка после начала транзакции - включая таймаут шлюза - откатывает
// все локальные изменения: купон не списан, бронирование остаётся pending_payment.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: user=%d, booking=%d, intent=%s",
		req.UserID, req.BookingID, req.PaymentIntentID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmBooking: validation failed: %v", err)
		return nil, err
	}

	var result *Response

	// 2. Проверка платежа и все изменения в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// 2.2. Бронирование принадлежит вызывающему пользователю
		if booking.UserID != req.UserID {
			uc.logger.Warn("ConfirmBooking: access denied for user=%d to booking id=%d",
				req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		// 2.3. Идемпотентность: подтверждать можно только из pending_payment
		if !booking.CanBeConfirmed() {
			if booking.Status == domain.StatusConfirmed {
				uc.logger.Warn("ConfirmBooking: booking id=%d already confirmed", req.BookingID)
				return ErrAlreadyConfirmed
			}
			uc.logger.Warn("ConfirmBooking: booking id=%d in status=%s", req.BookingID, booking.Status)
			return ErrInvalidStatus
		}

		// 2.4. Серверная проверка платежа у шлюза.
		// Клиентскому "оплата прошла" не доверяем.
		intent, err := uc.gateway.RetrieveIntent(txCtx, req.PaymentIntentID)
		if err != nil {
			if errors.Is(err, stripe.ErrIntentNotFound) {
				uc.logger.Warn("ConfirmBooking: intent %s not found", req.PaymentIntentID)
				return ErrPaymentNotSucceeded
			}
			uc.logger.Error("ConfirmBooking: gateway error for intent %s: %v", req.PaymentIntentID, err)
			return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
		}

		if intent.Status != stripe.IntentStatusSucceeded {
			uc.logger.Warn("ConfirmBooking: intent %s in status=%s", intent.ID, intent.Status)
			return ErrPaymentNotSucceeded
		}

		// 2.5. Сумма платежа обязана совпасть с ценой бронирования в minor units.
		// Блокирует подмену: оплатить дешёвый интент и подтвердить дорогое бронирование.
		expected := booking.FinalPriceMinorUnits()
		if intent.Amount != expected {
			uc.logger.Warn("ConfirmBooking: amount mismatch for booking id=%d: intent=%d expected=%d",
				req.BookingID, intent.Amount, expected)
			return ErrAmountMismatch
		}

		// 2.6. Списываем использование зарезервированного купона.
		// Ровно один инкремент на подтверждение - одноразовость перехода
		// статуса гарантирует, что повторный Confirm сюда не дойдёт.
		if booking.HasReservedCoupon() {
			if err := uc.couponRepo.IncrementUsage(txCtx, *booking.CouponID); err != nil {
				if errors.Is(err, couponRepo.ErrUsageLimitReached) {
					uc.logger.Warn("ConfirmBooking: coupon id=%d exhausted for booking id=%d",
						*booking.CouponID, req.BookingID)
					return ErrCouponExhausted
				}
				uc.logger.Error("ConfirmBooking: failed to increment coupon id=%d: %v",
					*booking.CouponID, err)
				return fmt.Errorf("%w: failed to finalize coupon: %v", ErrInternal, err)
			}
		}

		// 2.7. Выпускаем наградной промокод для следующего бронирования
		reward := uc.rewards.Generate()

		// 2.8. Переводим бронирование в confirmed (одноразовый переход)
		if err := uc.bookingRepo.Confirm(txCtx, req.BookingID, intent.ID, reward.Code, reward.Discount); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusConflict) {
				return ErrAlreadyConfirmed
			}
			uc.logger.Error("ConfirmBooking: failed to confirm booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}

		result = &Response{
			BookingID:           req.BookingID,
			Status:              string(domain.StatusConfirmed),
			PaymentIntentID:     intent.ID,
			RewardPromoCode:     reward.Code,
			RewardPromoDiscount: reward.Discount,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: successfully confirmed booking id=%d, reward=%s",
		req.BookingID, result.RewardPromoCode)
	return result, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.PaymentIntentID == "" {
		return fmt.Errorf("%w: paymentIntentID is required", ErrInvalidInput)
	}
	return nil
}
