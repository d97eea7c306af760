package confirm_booking

import (
	"context"

	"github.com/zumipet/ZMI-BookingService/internal/domain"
	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
	"github.com/zumipet/ZMI-BookingService/internal/rewards"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Confirm(ctx context.Context, id int64, paymentIntentID, rewardCode string, rewardDiscount int) error
}

// CouponRepository интерфейс репозитория купонов
type CouponRepository interface {
	IncrementUsage(ctx context.Context, id int64) error
}

// PaymentGateway интерфейс платёжного шлюза
type PaymentGateway interface {
	RetrieveIntent(ctx context.Context, intentID string) (*stripe.PaymentIntent, error)
}

// RewardIssuer интерфейс генератора наградных промокодов
type RewardIssuer interface {
	Generate() rewards.Reward
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
