package preview_price

import (
	"errors"
	"net/http"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	previewPrice "github.com/zumipet/ZMI-BookingService/internal/usecase/preview_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры запроса"
	msgItemNotFound       = "услуга или мероприятие не найдены"
	msgPremiumRequired    = "доступно только для premium подписки"
	msgInvalidCoupon      = "промокод недействителен или истёк"
)

type Handler struct {
	useCase PreviewPriceUseCase
	logger  Logger
}

func NewHandler(useCase PreviewPriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/pricing/preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req PreviewPriceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /pricing/preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, previewPrice.ErrInvalidInput):
			h.logger.Warn("POST /pricing/preview - Invalid input: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, previewPrice.ErrItemNotFound):
			h.logger.Warn("POST /pricing/preview - Item not found: user_id=%d, item_id=%d, item_type=%s",
				userID, req.ItemID, req.ItemType)
			handlers.RespondNotFound(w, msgItemNotFound)

		case errors.Is(err, previewPrice.ErrPremiumRequired):
			h.logger.Warn("POST /pricing/preview - Premium required: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondPremiumRequired(w, msgPremiumRequired)

		case errors.Is(err, previewPrice.ErrInvalidCoupon):
			h.logger.Warn("POST /pricing/preview - Invalid coupon: user_id=%d, item_id=%d", userID, req.ItemID)
			handlers.RespondUnprocessable(w, msgInvalidCoupon)

		default:
			h.logger.Error("POST /pricing/preview - Failed to preview price: user_id=%d, item_id=%d, error=%v",
				userID, req.ItemID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /pricing/preview - Price previewed: user_id=%d, item_id=%d, final_price=%s",
		userID, req.ItemID, result.FinalPrice.StringFixed(2))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
