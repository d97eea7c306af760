package initiate_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	itemRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/item"
)

// UseCase use case инициации бронирования.
// Пересчитывает цену внутри транзакции, резервирует купон (без списания
// использования) и создаёт бронирование в статусе pending_payment.
type UseCase struct {
	bookingRepo      BookingRepository
	itemRepo         ItemRepository
	subscriptionRepo SubscriptionRepository
	couponRepo       CouponRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	itemRepo ItemRepository,
	subscriptionRepo SubscriptionRepository,
	couponRepo CouponRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		itemRepo:         itemRepo,
		subscriptionRepo: subscriptionRepo,
		couponRepo:       couponRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет инициацию бронирования одним атомарным блоком.
// Любая ошибка (позиция не найдена, купон недействителен, цена не положительна)
// откатывает всю операцию - ничего не персистится.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("InitiateBooking: user=%d, item=%d, type=%s", req.UserID, req.ItemID, req.ItemType)

	// 1. Валидация входных данных
	itemType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("InitiateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	bookingDate := now
	if req.BookingDate != nil {
		bookingDate = *req.BookingDate
	}

	var result *domain.Booking

	// 2. Все проверки, расчёт и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем позицию каталога
		itm, err := uc.itemRepo.GetByID(txCtx, req.ItemID, itemType)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("InitiateBooking: item id=%d type=%s not found", req.ItemID, itemType)
				return ErrItemNotFound
			}
			uc.logger.Error("InitiateBooking: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		// 2.2. Определяем уровень подписки
		tier, err := uc.subscriptionRepo.GetActiveTier(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("InitiateBooking: failed to get tier for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get subscription tier: %v", ErrInternal, err)
		}

		// 2.3. premium-гейт проверяется до валидации купона и до расчёта
		if itm.IsPremiumOnly && tier != domain.TierPremium {
			uc.logger.Warn("InitiateBooking: premium required for item id=%d, user=%d tier=%s",
				req.ItemID, req.UserID, tier)
			return ErrPremiumRequired
		}

		// 2.4. Валидируем купон, если указан
		coupon, err := uc.resolveCoupon(txCtx, req.CouponCode, itemType, now)
		if err != nil {
			return err
		}

		// 2.5. Рассчитываем цену
		breakdown, err := domain.QuoteItem(itm, tier, coupon)
		if err != nil {
			if errors.Is(err, domain.ErrPremiumRequired) {
				return ErrPremiumRequired
			}
			return fmt.Errorf("%w: failed to quote item: %v", ErrInternal, err)
		}

		if !breakdown.FinalPrice.IsPositive() {
			uc.logger.Warn("InitiateBooking: non-positive final price for item id=%d", req.ItemID)
			return ErrNonPositivePrice
		}

		// 2.6. Собираем бронирование со снимком расчёта.
		// Купон только резервируется (coupon_id), used_count не трогаем -
		// пользователь, бросивший оплату, не должен сжечь ограниченный купон.
		booking := &domain.Booking{
			UserID:               req.UserID,
			ItemID:               itm.ID,
			ItemType:             itemType,
			PetID:                req.PetID,
			OriginalPrice:        breakdown.OriginalPrice,
			ProviderDiscount:     breakdown.ProviderDiscount,
			SubscriptionDiscount: breakdown.SubscriptionDiscount,
			CouponDiscount:       breakdown.CouponDiscount,
			FinalPrice:           breakdown.FinalPrice,
			Status:               domain.StatusPendingPayment,
			BookingDate:          bookingDate,
		}
		if coupon != nil {
			booking.CouponCode = &coupon.Code
			booking.CouponID = &coupon.ID
		}

		// 2.7. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("InitiateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("InitiateBooking: successfully created booking id=%d, final=%s",
		result.ID, result.FinalPrice.Round(2))

	return &Response{
		BookingID:            result.ID,
		OriginalPrice:        result.OriginalPrice,
		ProviderDiscount:     result.ProviderDiscount,
		SubscriptionDiscount: result.SubscriptionDiscount,
		CouponDiscount:       result.CouponDiscount,
		FinalPrice:           result.FinalPrice.Round(2),
		Status:               string(result.Status),
		BookingDate:          result.BookingDate,
		CreatedAt:            result.CreatedAt,
	}, nil
}

// resolveCoupon находит и проверяет купон.
// Все причины отказа сворачиваются в общий ErrInvalidCoupon.
func (uc *UseCase) resolveCoupon(ctx context.Context, code *string, itemType domain.ItemType, now time.Time) (*domain.Coupon, error) {
	if code == nil || *code == "" {
		return nil, nil
	}

	coupon, err := uc.couponRepo.GetByCode(ctx, *code)
	if err != nil {
		if errors.Is(err, couponRepo.ErrCouponNotFound) {
			uc.logger.Warn("InitiateBooking: coupon not found")
			return nil, ErrInvalidCoupon
		}
		uc.logger.Error("InitiateBooking: failed to get coupon: %v", err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	if !coupon.IsRedeemableFor(itemType, now) {
		uc.logger.Warn("InitiateBooking: coupon id=%d not redeemable", coupon.ID)
		return nil, ErrInvalidCoupon
	}

	return coupon, nil
}
