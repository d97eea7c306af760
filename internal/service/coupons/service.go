package coupons

import (
	"context"
	"fmt"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

// CouponResponse информационный DTO действующего купона
type CouponResponse struct {
	Code            string `json:"code"`
	DiscountPercent string `json:"discountPercent"`
	RemainingUses   *int   `json:"remainingUses,omitempty"` // nil = без ограничений
	ApplicableType  string `json:"applicableType"`
	ValidUntil      string `json:"validUntil"`
}

// CouponListResponse ответ со списком действующих купонов
type CouponListResponse struct {
	Coupons []CouponResponse `json:"coupons"`
}

// Service информационный сервис купонов.
// Валидация и списание использований живут в use cases бронирования.
type Service struct {
	couponRepo   CouponRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса купонов
func NewService(couponRepo CouponRepository, logger Logger) *Service {
	return &Service{
		couponRepo:   couponRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ListActive возвращает все действующие купоны
func (s *Service) ListActive(ctx context.Context) (*CouponListResponse, error) {
	now := s.timeProvider.Now()

	coupons, err := s.couponRepo.ListActive(ctx, now)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	result := &CouponListResponse{
		Coupons: make([]CouponResponse, 0, len(coupons)),
	}
	for _, c := range coupons {
		result.Coupons = append(result.Coupons, fromDomainCoupon(c))
	}

	s.logger.Info("ListActive: fetched %d active coupons", len(result.Coupons))
	return result, nil
}

func fromDomainCoupon(c *domain.Coupon) CouponResponse {
	return CouponResponse{
		Code:            c.Code,
		DiscountPercent: c.DiscountPercent.String(),
		RemainingUses:   c.RemainingUses(),
		ApplicableType:  string(c.ApplicableType),
		ValidUntil:      c.ValidUntil.Format(domain.DateFormat),
	}
}
