package create_payment_intent

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidAmount      = "некорректная сумма платежа"
	msgAmountTooLarge     = "сумма платежа превышает допустимый максимум"
	msgGatewayUnavailable = "платёжный сервис временно недоступен"
)

type Handler struct {
	gateway  PaymentGateway
	currency string
	logger   Logger
}

func NewHandler(gateway PaymentGateway, currency string, logger Logger) *Handler {
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	return &Handler{
		gateway:  gateway,
		currency: currency,
		logger:   logger,
	}
}

// Handle POST /api/v1/payments/intent
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется аутентификация")
		return
	}

	var req CreateIntentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/intent - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if !req.Amount.IsPositive() {
		h.logger.Warn("POST /payments/intent - Non-positive amount: user_id=%d, amount=%s", userID, req.Amount)
		handlers.RespondBadRequest(w, msgInvalidAmount)
		return
	}

	currency := h.currency
	if req.Currency != nil && *req.Currency != "" {
		currency = *req.Currency
	}

	// Ключ идемпотентности генерируется на каждый запрос: ретраи на уровне
	// HTTP клиента шлюза не создадут второй интент.
	idempotencyKey := uuid.NewString()

	intent, err := h.gateway.CreateIntent(r.Context(), domain.MinorUnits(req.Amount), currency, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, stripe.ErrInvalidAmount):
			h.logger.Warn("POST /payments/intent - Invalid amount: user_id=%d, amount=%s", userID, req.Amount)
			handlers.RespondBadRequest(w, msgInvalidAmount)

		case errors.Is(err, stripe.ErrAmountTooLarge):
			h.logger.Warn("POST /payments/intent - Amount too large: user_id=%d, amount=%s", userID, req.Amount)
			handlers.RespondBadRequest(w, msgAmountTooLarge)

		case errors.Is(err, stripe.ErrGatewayUnavailable), errors.Is(err, stripe.ErrInvalidResponse):
			h.logger.Error("POST /payments/intent - Gateway error: user_id=%d, error=%v", userID, err)
			handlers.RespondBadGateway(w, msgGatewayUnavailable)

		default:
			h.logger.Error("POST /payments/intent - Failed to create intent: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/intent - Intent created: user_id=%d, intent_id=%s, amount=%d",
		userID, intent.ID, intent.Amount)
	handlers.RespondJSON(w, http.StatusCreated, FromIntent(intent))
}
