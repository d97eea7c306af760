package confirm_booking

import (
	confirmBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/confirm_booking"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
}

// RewardResponse выпущенный наградной промокод
type RewardResponse struct {
	PromoCode string `json:"promoCode"`
	Discount  int    `json:"discount"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingID       int64          `json:"bookingId"`
	Status          string         `json:"status"`
	PaymentIntentID string         `json:"paymentIntentId"`
	Reward          RewardResponse `json:"reward"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		BookingID:       resp.BookingID,
		Status:          resp.Status,
		PaymentIntentID: resp.PaymentIntentID,
		Reward: RewardResponse{
			PromoCode: resp.RewardPromoCode,
			Discount:  resp.RewardPromoDiscount,
		},
	}
}
