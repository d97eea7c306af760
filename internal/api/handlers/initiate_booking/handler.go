package initiate_booking

import (
	"errors"
	"net/http"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	initiateBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/initiate_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные параметры запроса"
	msgItemNotFound       = "услуга или мероприятие не найдены"
	msgPremiumRequired    = "доступно только для premium подписки"
	msgInvalidCoupon      = "промокод недействителен или истёк"
	msgNonPositivePrice   = "итоговая цена должна быть положительной"
)

type Handler struct {
	useCase InitiateBookingUseCase
	logger  Logger
}

func NewHandler(useCase InitiateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/initiate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req InitiateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/initiate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/initiate - Failed to parse booking date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, initiateBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/initiate - Invalid input: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, initiateBooking.ErrItemNotFound):
			h.logger.Warn("POST /bookings/initiate - Item not found: user_id=%d, item_id=%d, item_type=%s",
				userID, req.ItemID, req.ItemType)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, initiateBooking.ErrPremiumRequired):
			h.logger.Warn("POST /bookings/initiate - Premium required: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondPremiumRequired(w, msgPremiumRequired)

		case errors.Is(err, initiateBooking.ErrInvalidCoupon):
			h.logger.Warn("POST /bookings/initiate - Invalid coupon: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondUnprocessable(w, msgInvalidCoupon)

		case errors.Is(err, initiateBooking.ErrNonPositivePrice):
			h.logger.Warn("POST /bookings/initiate - Non-positive final price: user_id=%d, item_id=%d",
				userID, req.ItemID)
			handlers.RespondUnprocessable(w, msgNonPositivePrice)

		default:
			h.logger.Error("POST /bookings/initiate - Failed to initiate booking: user_id=%d, item_id=%d, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/initiate - Booking initiated: booking_id=%d, user_id=%d, final_price=%s",
		result.BookingID, userID, result.FinalPrice.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
