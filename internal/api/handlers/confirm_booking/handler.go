package confirm_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	confirmBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidBookingID    = "некорректный ID бронирования"
	msgInvalidInput        = "некорректные параметры запроса"
	msgBookingNotFound     = "бронирование не найдено"
	msgAccessDenied        = "нет доступа к этому бронированию"
	msgAlreadyConfirmed    = "бронирование уже подтверждено"
	msgInvalidStatus       = "бронирование не ожидает оплаты"
	msgPaymentNotSucceeded = "платёж не завершён"
	msgAmountMismatch      = "сумма платежа не совпадает с ценой бронирования"
	msgCouponExhausted     = "лимит использования промокода исчерпан"
	msgGatewayUnavailable  = "платёжный сервис временно недоступен"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PUT /bookings/{id}/confirm - Invalid booking ID: %s", vars["bookingId"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/confirm - Invalid request body: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		UserID:          userID,
		BookingID:       bookingID,
		PaymentIntentID: req.PaymentIntentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/confirm - Invalid input: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/confirm - Booking not found: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/confirm - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmBooking.ErrAlreadyConfirmed):
			h.logger.Warn("PUT /bookings/{id}/confirm - Already confirmed: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgAlreadyConfirmed)

		case errors.Is(err, confirmBooking.ErrInvalidStatus):
			h.logger.Warn("PUT /bookings/{id}/confirm - Invalid status: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgInvalidStatus)

		case errors.Is(err, confirmBooking.ErrPaymentNotSucceeded):
			h.logger.Warn("PUT /bookings/{id}/confirm - Payment not succeeded: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondUnprocessable(w, msgPaymentNotSucceeded)

		case errors.Is(err, confirmBooking.ErrAmountMismatch):
			h.logger.Warn("PUT /bookings/{id}/confirm - Amount mismatch: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondUnprocessable(w, msgAmountMismatch)

		case errors.Is(err, confirmBooking.ErrCouponExhausted):
			h.logger.Warn("PUT /bookings/{id}/confirm - Coupon exhausted: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondConflict(w, msgCouponExhausted)

		case errors.Is(err, confirmBooking.ErrPaymentGateway):
			h.logger.Error("PUT /bookings/{id}/confirm - Gateway error: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondBadGateway(w, msgGatewayUnavailable)

		default:
			h.logger.Error("PUT /bookings/{id}/confirm - Failed to confirm booking: booking_id=%d, user_id=%d, error=%v",
				bookingID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/confirm - Booking confirmed: booking_id=%d, user_id=%d, reward_code=%s",
		result.BookingID, userID, result.RewardPromoCode)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
