package preview_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	couponRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/coupon"
	itemRepo "github.com/zumipet/ZMI-BookingService/internal/infra/storage/item"
)

// UseCase use case предварительного расчёта цены бронирования
type UseCase struct {
	itemRepo         ItemRepository
	subscriptionRepo SubscriptionRepository
	couponRepo       CouponRepository
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	itemRepo ItemRepository,
	subscriptionRepo SubscriptionRepository,
	couponRepo CouponRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		itemRepo:         itemRepo,
		subscriptionRepo: subscriptionRepo,
		couponRepo:       couponRepo,
		txManager:        txManager,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute рассчитывает разбивку цены без какой-либо персистенции.
// Чтения выполняются в read-only транзакции для консистентного снимка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PreviewPrice: user=%d, item=%d, type=%s", req.UserID, req.ItemID, req.ItemType)

	// 1. Валидация входных данных
	itemType, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PreviewPrice: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *Response

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 2. Получаем позицию каталога
		itm, err := uc.itemRepo.GetByID(txCtx, req.ItemID, itemType)
		if err != nil {
			if errors.Is(err, itemRepo.ErrItemNotFound) {
				uc.logger.Warn("PreviewPrice: item id=%d type=%s not found", req.ItemID, itemType)
				return ErrItemNotFound
			}
			uc.logger.Error("PreviewPrice: failed to get item id=%d: %v", req.ItemID, err)
			return fmt.Errorf("%w: failed to get item: %v", ErrInternal, err)
		}

		// 3. Определяем уровень подписки пользователя
		tier, err := uc.subscriptionRepo.GetActiveTier(txCtx, req.UserID)
		if err != nil {
			uc.logger.Error("PreviewPrice: failed to get tier for user=%d: %v", req.UserID, err)
			return fmt.Errorf("%w: failed to get subscription tier: %v", ErrInternal, err)
		}

		// 4. premium-гейт проверяется до валидации купона
		if itm.IsPremiumOnly && tier != domain.TierPremium {
			uc.logger.Warn("PreviewPrice: premium required for item id=%d, user=%d tier=%s",
				req.ItemID, req.UserID, tier)
			return ErrPremiumRequired
		}

		// 5. Валидируем купон, если указан
		coupon, err := uc.resolveCoupon(txCtx, req.CouponCode, itemType, now)
		if err != nil {
			return err
		}

		// 6. Чистый расчёт цены
		breakdown, err := domain.QuoteItem(itm, tier, coupon)
		if err != nil {
			if errors.Is(err, domain.ErrPremiumRequired) {
				return ErrPremiumRequired
			}
			return fmt.Errorf("%w: failed to quote item: %v", ErrInternal, err)
		}

		result = &Response{
			OriginalPrice:        breakdown.OriginalPrice,
			ProviderDiscount:     breakdown.ProviderDiscount,
			SubscriptionDiscount: breakdown.SubscriptionDiscount,
			CouponDiscount:       breakdown.CouponDiscount,
			FinalPrice:           breakdown.DisplayFinalPrice(),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("PreviewPrice: user=%d, item=%d, final=%s", req.UserID, req.ItemID, result.FinalPrice)
	return result, nil
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
			uc.logger.Warn("PreviewPrice: coupon not found")
			return nil, ErrInvalidCoupon
		}
		uc.logger.Error("PreviewPrice: failed to get coupon: %v", err)
		return nil, fmt.Errorf("%w: failed to get coupon: %v", ErrInternal, err)
	}

	if !coupon.IsRedeemableFor(itemType, now) {
		uc.logger.Warn("PreviewPrice: coupon id=%d not redeemable", coupon.ID)
		return nil, ErrInvalidCoupon
	}

	return coupon, nil
}
