package list_coupons

import (
	"net/http"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
)

type Handler struct {
	service CouponService
	logger  Logger
}

func NewHandler(service CouponService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/coupons
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListActive(r.Context())
	if err != nil {
		h.logger.Error("GET /coupons - Failed to list coupons: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /coupons - Coupons fetched: count=%d", len(result.Coupons))
	handlers.RespondJSON(w, http.StatusOK, result)
}
