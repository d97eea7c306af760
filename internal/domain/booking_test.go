package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

func TestBooking_StatusTransitions(t *testing.T) {
	tests := []struct {
		status       domain.BookingStatus
		canConfirm   bool
		canCancel    bool
		isTerminal   bool
	}{
		{domain.StatusPendingPayment, true, true, false},
		{domain.StatusConfirmed, false, true, false},
		{domain.StatusCompleted, false, false, true},
		{domain.StatusCancelled, false, false, true},
	}

	for _, tt := range tests {
		b := &domain.Booking{Status: tt.status}
		assert.Equal(t, tt.canConfirm, b.CanBeConfirmed(), "CanBeConfirmed: %s", tt.status)
		assert.Equal(t, tt.canCancel, b.CanBeCancelled(), "CanBeCancelled: %s", tt.status)
		assert.Equal(t, tt.isTerminal, b.IsTerminal(), "IsTerminal: %s", tt.status)
	}
}

func TestBooking_HasReservedCoupon(t *testing.T) {
	b := &domain.Booking{}
	assert.False(t, b.HasReservedCoupon())

	couponID := int64(42)
	b.CouponID = &couponID
	assert.True(t, b.HasReservedCoupon())
}

func TestBooking_FinalPriceMinorUnits(t *testing.T) {
	b := &domain.Booking{FinalPrice: decimal.RequireFromString("83.69163")}
	assert.Equal(t, int64(8369), b.FinalPriceMinorUnits())

	b.FinalPrice = decimal.RequireFromString("72")
	assert.Equal(t, int64(7200), b.FinalPriceMinorUnits())
}
