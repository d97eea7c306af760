package coupons

import (
	"context"
	"time"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
)

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	ListActive(ctx context.Context, now time.Time) ([]*domain.Coupon, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
