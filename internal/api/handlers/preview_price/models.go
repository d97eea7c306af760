package preview_price

import (
	previewPrice "github.com/zumipet/ZMI-BookingService/internal/usecase/preview_price"
)

// PreviewPriceRequest HTTP request model
type PreviewPriceRequest struct {
	ItemID     int64   `json:"itemId"`
	ItemType   string  `json:"itemType"` // "service" | "event"
	CouponCode *string `json:"couponCode,omitempty"`
}

// DiscountsResponse разбивка применённых скидок (проценты)
type DiscountsResponse struct {
	Provider     string `json:"provider"`
	Subscription string `json:"subscription"`
	Coupon       string `json:"coupon"`
}

// PreviewPriceResponse HTTP response model.
// Денежные суммы сериализуются строками с двумя знаками после запятой.
type PreviewPriceResponse struct {
	OriginalPrice string            `json:"originalPrice"`
	Discounts     DiscountsResponse `json:"discounts"`
	FinalPrice    string            `json:"finalPrice"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *PreviewPriceRequest) ToUseCaseRequest(userID int64) *previewPrice.Request {
	return &previewPrice.Request{
		UserID:     userID,
		ItemID:     r.ItemID,
		ItemType:   r.ItemType,
		CouponCode: r.CouponCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewPrice.Response) *PreviewPriceResponse {
	return &PreviewPriceResponse{
		OriginalPrice: resp.OriginalPrice.StringFixed(2),
		Discounts: DiscountsResponse{
			Provider:     resp.ProviderDiscount.String(),
			Subscription: resp.SubscriptionDiscount.String(),
			Coupon:       resp.CouponDiscount.String(),
		},
		FinalPrice: resp.FinalPrice.StringFixed(2),
	}
}
