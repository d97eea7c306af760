package initiate_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	itemRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/item"
	"github.com/zumipet/ZMI-BookingService/pkg/ptr"
)

// Фейки

type fakeBookingRepo struct {
	created *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	created := *booking
	created.ID = 101
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

type fakeItemRepo struct {
	item *domain.Item
}

func (f *fakeItemRepo) GetByID(_ context.Context, id int64, itemType domain.ItemType) (*domain.Item, error) {
	if f.item == nil || f.item.ID != id || f.item.Type != itemType {
		return nil, itemRepo.ErrItemNotFound
	}
	return f.item, nil
}

type fakeSubscriptionRepo struct {
	tier domain.Tier
}

func (f *fakeSubscriptionRepo) GetActiveTier(_ context.Context, _ int64) (domain.Tier, error) {
	return f.tier, nil
}

type fakeCouponRepo struct {
	coupon *domain.Coupon
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	if f.coupon == nil || f.coupon.Code != code {
		return nil, couponRepo.ErrCouponNotFound
	}
	return f.coupon, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

// Сборка

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	items    *fakeItemRepo
	subs     *fakeSubscriptionRepo
	coupons  *fakeCouponRepo
	tx       *fakeTxManager
	now      time.Time
}

func newFixture(tier domain.Tier) *fixture {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	f := &fixture{
		bookings: &fakeBookingRepo{},
		items: &fakeItemRepo{
			item: &domain.Item{
				ID:                      5,
				Type:                    domain.ItemTypeService,
				Title:                   "Груминг",
				Price:                   decimal.NewFromInt(100),
				ProviderDiscountPercent: decimal.NewFromInt(10),
			},
		},
		subs:    &fakeSubscriptionRepo{tier: tier},
		coupons: &fakeCouponRepo{},
		tx:      &fakeTxManager{},
		now:     now,
	}

	f.uc = NewUseCase(f.bookings, f.items, f.subs, f.coupons, f.tx, nopLogger{})
	f.uc.timeProvider = &fixedTime{now: now}
	return f
}

func (f *fixture) withCoupon(discount int64, usageLimit, usedCount int) {
	f.coupons.coupon = &domain.Coupon{
		ID:              9,
		Code:            "PETS20",
		DiscountPercent: decimal.NewFromInt(discount),
		ValidFrom:       f.now.Add(-24 * time.Hour),
		ValidUntil:      f.now.Add(24 * time.Hour),
		UsageLimit:      usageLimit,
		UsedCount:       usedCount,
		ApplicableType:  domain.CouponTypeAll,
	}
}

func TestInitiateBooking_PremiumSubscription(t *testing.T) {
	f := newFixture(domain.TierPremium)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:   1,
		ItemID:   5,
		ItemType: "service",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.BookingID)
	assert.Equal(t, "72.00", resp.FinalPrice.StringFixed(2))
	assert.Equal(t, string(domain.StatusPendingPayment), resp.Status)
	assert.Equal(t, 1, f.tx.calls)
}

func TestInitiateBooking_CouponReservedWithoutIncrement(t *testing.T) {
	f := newFixture(domain.TierFree)
	f.withCoupon(20, 1, 0)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		ItemID:     5,
		ItemType:   "service",
		CouponCode: ptr.Ptr("PETS20"),
	})
	require.NoError(t, err)

	assert.Equal(t, "72.00", resp.FinalPrice.StringFixed(2))

	// Купон зарезервирован в бронировании, used_count не тронут
	require.NotNil(t, f.bookings.created.CouponID)
	assert.Equal(t, int64(9), *f.bookings.created.CouponID)
	assert.Equal(t, 0, f.coupons.coupon.UsedCount)
}

func TestInitiateBooking_UnknownCouponRejected(t *testing.T) {
	f := newFixture(domain.TierFree)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		ItemID:     5,
		ItemType:   "service",
		CouponCode: ptr.Ptr("NOSUCH"),
	})
	assert.ErrorIs(t, err, ErrInvalidCoupon)
	assert.Nil(t, f.bookings.created)
}

func TestInitiateBooking_ExhaustedCouponRejected(t *testing.T) {
	f := newFixture(domain.TierFree)
	f.withCoupon(20, 1, 1)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		ItemID:     5,
		ItemType:   "service",
		CouponCode: ptr.Ptr("PETS20"),
	})
	assert.ErrorIs(t, err, ErrInvalidCoupon)
}

func TestInitiateBooking_PremiumGateBeforeCoupon(t *testing.T) {
	f := newFixture(domain.TierFree)
	f.items.item.IsPremiumOnly = true
	f.withCoupon(30, 0, 0)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:     1,
		ItemID:     5,
		ItemType:   "service",
		CouponCode: ptr.Ptr("PETS20"),
	})
	assert.ErrorIs(t, err, ErrPremiumRequired)
	assert.Nil(t, f.bookings.created)
}

func TestInitiateBooking_ItemNotFound(t *testing.T) {
	f := newFixture(domain.TierFree)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:   1,
		ItemID:   999,
		ItemType: "service",
	})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestInitiateBooking_NonPositivePriceRejected(t *testing.T) {
	f := newFixture(domain.TierFree)
	f.items.item.ProviderDiscountPercent = decimal.NewFromInt(100)

	_, err := f.uc.Execute(context.Background(), &Request{
		UserID:   1,
		ItemID:   5,
		ItemType: "service",
	})
	assert.ErrorIs(t, err, ErrNonPositivePrice)
	assert.Nil(t, f.bookings.created)
}

func TestInitiateBooking_InvalidInput(t *testing.T) {
	f := newFixture(domain.TierFree)

	tests := []struct {
		name string
		req  *Request
	}{
		{"нулевой user_id", &Request{UserID: 0, ItemID: 5, ItemType: "service"}},
		{"нулевой item_id", &Request{UserID: 1, ItemID: 0, ItemType: "service"}},
		{"неизвестный item_type", &Request{UserID: 1, ItemID: 5, ItemType: "subscription"}},
		{"нулевой pet_id", &Request{UserID: 1, ItemID: 5, ItemType: "service", PetID: ptr.Ptr(int64(0))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestInitiateBooking_DefaultBookingDate(t *testing.T) {
	f := newFixture(domain.TierFree)

	resp, err := f.uc.Execute(context.Background(), &Request{
		UserID:   1,
		ItemID:   5,
		ItemType: "service",
	})
	require.NoError(t, err)
	assert.Equal(t, f.now, resp.BookingDate)
}
