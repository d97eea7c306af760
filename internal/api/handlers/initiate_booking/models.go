package initiate_booking

import (
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	initiateBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/initiate_booking"
)

// InitiateBookingRequest HTTP request model
type InitiateBookingRequest struct {
	ItemID      int64   `json:"itemId"`
	ItemType    string  `json:"itemType"` // "service" | "event"
	CouponCode  *string `json:"couponCode,omitempty"`
	PetID       *int64  `json:"petId,omitempty"`
	BookingDate *string `json:"bookingDate,omitempty"` // "2026-08-28"
}

// InitiateBookingResponse HTTP response model
type InitiateBookingResponse struct {
	BookingID            int64  `json:"bookingId"`
	OriginalPrice        string `json:"originalPrice"`
	ProviderDiscount     string `json:"providerDiscount"`
	SubscriptionDiscount string `json:"subscriptionDiscount"`
	CouponDiscount       string `json:"couponDiscount"`
	FinalPrice           string `json:"finalPrice"`
	Status               string `json:"status"`
	BookingDate          string `json:"bookingDate"`
	CreatedAt            string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *InitiateBookingRequest) ToUseCaseRequest(userID int64) (*initiateBooking.Request, error) {
	var bookingDate *time.Time
	if r.BookingDate != nil {
		parsed, err := time.Parse(domain.DateFormat, *r.BookingDate)
		if err != nil {
			return nil, err
		}
		bookingDate = &parsed
	}

	return &initiateBooking.Request{
		UserID:      userID,
		ItemID:      r.ItemID,
		ItemType:    r.ItemType,
		CouponCode:  r.CouponCode,
		PetID:       r.PetID,
		BookingDate: bookingDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *initiateBooking.Response) *InitiateBookingResponse {
	return &InitiateBookingResponse{
		BookingID:            resp.BookingID,
		OriginalPrice:        resp.OriginalPrice.StringFixed(2),
		ProviderDiscount:     resp.ProviderDiscount.String(),
		SubscriptionDiscount: resp.SubscriptionDiscount.String(),
		CouponDiscount:       resp.CouponDiscount.String(),
		FinalPrice:           resp.FinalPrice.StringFixed(2),
		Status:               resp.Status,
		BookingDate:          resp.BookingDate.Format(domain.DateFormat),
		CreatedAt:            resp.CreatedAt.Format(time.RFC3339),
	}
}
