package preview_price

import (
	"fmt"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (domain.ItemType, error) {
	if req.UserID <= 0 {
		return "", fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ItemID <= 0 {
		return "", fmt.Errorf("%w: itemID must be positive", ErrInvalidInput)
	}

	itemType, err := domain.ParseItemType(req.ItemType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.CouponCode != nil && len(*req.CouponCode) > domain.MaxCouponCodeLength {
		return "", fmt.Errorf("%w: coupon code too long", ErrInvalidInput)
	}

	return itemType, nil
}
