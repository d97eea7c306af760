package initiate_booking

import (
	"context"

	initiateBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/initiate_booking"
)

type InitiateBookingUseCase interface {
	Execute(ctx context.Context, req *initiateBooking.Request) (*initiateBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
