package confirm_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	bookingRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/booking"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
	"github.com/zumipet/ZMI-BookingService/internal/rewards"
	"github.com/zumipet/ZMI-BookingService/pkg/ptr"
)

// Фейки

type fakeBookingRepo struct {
	booking   *domain.Booking
	confirmed int // число успешных переходов в confirmed
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id int64, paymentIntentID, rewardCode string, rewardDiscount int) error {
	if f.booking == nil || f.booking.ID != id {
		return bookingRepo.ErrBookingNotFound
	}
	if f.booking.Status != domain.StatusPendingPayment {
		return bookingRepo.ErrStatusConflict
	}
	f.booking.Status = domain.StatusConfirmed
	f.booking.PaymentIntentID = &paymentIntentID
	f.booking.RewardPromoCode = &rewardCode
	f.booking.RewardPromoDiscount = &rewardDiscount
	f.confirmed++
	return nil
}

type fakeCouponRepo struct {
	usageLimit int
	usedCount  int
	increments int
}

func (f *fakeCouponRepo) IncrementUsage(_ context.Context, _ int64) error {
	if f.usageLimit > 0 && f.usedCount >= f.usageLimit {
		return couponRepo.ErrUsageLimitReached
	}
	f.usedCount++
	f.increments++
	return nil
}

type fakeGateway struct {
	intent *stripe.PaymentIntent
	err    error
}

func (f *fakeGateway) RetrieveIntent(_ context.Context, intentID string) (*stripe.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.intent == nil || f.intent.ID != intentID {
		return nil, stripe.ErrIntentNotFound
	}
	return f.intent, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Сборка

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	coupons  *fakeCouponRepo
	gateway  *fakeGateway
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{
			booking: &domain.Booking{
				ID:          55,
				UserID:      1,
				ItemID:      5,
				ItemType:    domain.ItemTypeService,
				FinalPrice:  decimal.RequireFromString("72"),
				Status:      domain.StatusPendingPayment,
				BookingDate: time.Now(),
			},
		},
		coupons: &fakeCouponRepo{usageLimit: 1},
		gateway: &fakeGateway{
			intent: &stripe.PaymentIntent{
				ID:       "pi_123",
				Amount:   7200,
				Currency: "usd",
				Status:   stripe.IntentStatusSucceeded,
			},
		},
	}

	f.uc = NewUseCase(f.bookings, f.coupons, f.gateway, rewards.NewGeneratorWithSeed(1), fakeTxManager{}, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{UserID: 1, BookingID: 55, PaymentIntentID: "pi_123"}
}

func TestConfirmBooking_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "pi_123", resp.PaymentIntentID)
	assert.NotEmpty(t, resp.RewardPromoCode)
	assert.Contains(t, domain.RewardDiscounts, resp.RewardPromoDiscount)
	assert.Equal(t, 1, f.bookings.confirmed)
}

// Списание купона происходит ровно один раз и только при подтверждении
func TestConfirmBooking_CouponFinalizedOnce(t *testing.T) {
	f := newFixture()
	f.bookings.booking.CouponID = ptr.Ptr(int64(9))
	f.bookings.booking.CouponCode = ptr.Ptr("PETS20")

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, f.coupons.increments)

	// Повторное подтверждение отклоняется, инкремент не повторяется
	_, err = f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Equal(t, 1, f.coupons.increments)
	assert.Equal(t, 1, f.bookings.confirmed)
}

func TestConfirmBooking_WithoutCouponNoIncrement(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0, f.coupons.increments)
}

func TestConfirmBooking_CouponExhaustedBetweenInitiateAndConfirm(t *testing.T) {
	f := newFixture()
	f.bookings.booking.CouponID = ptr.Ptr(int64(9))
	f.coupons.usedCount = 1 // другой пользователь успел подтвердиться первым

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrCouponExhausted)
}

func TestConfirmBooking_AmountMismatch(t *testing.T) {
	f := newFixture()
	f.gateway.intent.Amount = 100 // оплачен дешёвый интент

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAmountMismatch)
	assert.Equal(t, 0, f.bookings.confirmed)
}

func TestConfirmBooking_PaymentNotSucceeded(t *testing.T) {
	f := newFixture()
	f.gateway.intent.Status = "requires_payment_method"

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentNotSucceeded)
}

func TestConfirmBooking_IntentNotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.PaymentIntentID = "pi_unknown"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrPaymentNotSucceeded)
}

// Недоступность шлюза - отдельный, повторяемый отказ
func TestConfirmBooking_GatewayUnavailable(t *testing.T) {
	f := newFixture()
	f.gateway.err = stripe.ErrGatewayUnavailable

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrPaymentGateway)
	assert.Equal(t, 0, f.bookings.confirmed)
}

func TestConfirmBooking_AccessDenied(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.UserID = 2

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirmBooking_NotFound(t *testing.T) {
	f := newFixture()

	req := validRequest()
	req.BookingID = 999

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestConfirmBooking_TerminalStatuses(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		f := newFixture()
		f.bookings.booking.Status = status

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInvalidStatus, "status=%s", status)
	}
}

func TestConfirmBooking_InvalidInput(t *testing.T) {
	f := newFixture()

	tests := []*Request{
		{UserID: 0, BookingID: 55, PaymentIntentID: "pi_123"},
		{UserID: 1, BookingID: 0, PaymentIntentID: "pi_123"},
		{UserID: 1, BookingID: 55, PaymentIntentID: ""},
	}
	for _, req := range tests {
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
