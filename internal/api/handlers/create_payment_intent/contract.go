package create_payment_intent

import (
	"context"

	"github.com/zumipet/ZMI-BookingService/internal/integrations/stripe"
)

// PaymentGateway интерфейс платёжного шлюза
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency, idempotencyKey string) (*stripe.PaymentIntent, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
