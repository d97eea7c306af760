package list_coupons

import (
	"context"

	"github.com/zumipet/ZMI-BookingService/internal/service/coupons"
)

// CouponService интерфейс информационного сервиса купонов
type CouponService interface {
	ListActive(ctx context.Context) (*coupons.CouponListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
