package models

import (
	"errors"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	ItemID   int64  `json:"itemId"`
	ItemType string `json:"itemType"`
	PetID    *int64 `json:"petId,omitempty"`

	OriginalPrice        string  `json:"originalPrice"`
	ProviderDiscount     string  `json:"providerDiscount"`
	SubscriptionDiscount string  `json:"subscriptionDiscount"`
	CouponCode           *string `json:"couponCode,omitempty"`
	CouponDiscount       string  `json:"couponDiscount"`
	FinalPrice           string  `json:"finalPrice"`

	Status          string  `json:"status"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`

	RewardPromoCode     *string `json:"rewardPromoCode,omitempty"`
	RewardPromoDiscount *int    `json:"rewardPromoDiscount,omitempty"`

	BookingDate string    `json:"bookingDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(s) {
	case domain.StatusPendingPayment, domain.StatusConfirmed, domain.StatusCompleted, domain.StatusCancelled:
		return domain.BookingStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                   b.ID,
		UserID:               b.UserID,
		ItemID:               b.ItemID,
		ItemType:             string(b.ItemType),
		PetID:                b.PetID,
		OriginalPrice:        b.OriginalPrice.Round(2).StringFixed(2),
		ProviderDiscount:     b.ProviderDiscount.String(),
		SubscriptionDiscount: b.SubscriptionDiscount.String(),
		CouponCode:           b.CouponCode,
		CouponDiscount:       b.CouponDiscount.String(),
		FinalPrice:           b.FinalPrice.Round(2).StringFixed(2),
		Status:               string(b.Status),
		PaymentIntentID:      b.PaymentIntentID,
		RewardPromoCode:      b.RewardPromoCode,
		RewardPromoDiscount:  b.RewardPromoDiscount,
		BookingDate:          b.BookingDate.Format(domain.DateFormat),
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}
