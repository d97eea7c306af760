package confirm_booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/zumipet/ZMI-BookingService/internal/api/handlers/confirm_booking"
	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
	confirmBooking "github.com/zumipet/ZMI-BookingService/internal/usecase/confirm_booking"
)

type fakeUseCase struct {
	gotReq *confirmBooking.Request
	resp   *confirmBooking.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth(middleware.NewAuthEvents()))
	h := handler.NewHandler(uc, nopLogger{})
	r.HandleFunc("/bookings/{bookingId}/confirm", h.Handle).Methods(http.MethodPut)
	return r
}

func doConfirm(t *testing.T, router *mux.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set(middleware.UserIDHeader, "1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	uc := &fakeUseCase{
		resp: &confirmBooking.Response{
			BookingID:           55,
			Status:              "confirmed",
			PaymentIntentID:     "pi_123",
			RewardPromoCode:     "ZUMI10AB12",
			RewardPromoDiscount: 10,
		},
	}
	router := newRouter(uc)

	rec := doConfirm(t, router, "/bookings/55/confirm", `{"paymentIntentId":"pi_123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(55), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "ZUMI10AB12", resp.Reward.PromoCode)
	assert.Equal(t, 10, resp.Reward.Discount)

	// ID из path и пользователь из заголовка дошли до use case
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(55), uc.gotReq.BookingID)
	assert.Equal(t, int64(1), uc.gotReq.UserID)
	assert.Equal(t, "pi_123", uc.gotReq.PaymentIntentID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", confirmBooking.ErrBookingNotFound, http.StatusNotFound},
		{"access denied", confirmBooking.ErrAccessDenied, http.StatusForbidden},
		{"already confirmed", confirmBooking.ErrAlreadyConfirmed, http.StatusConflict},
		{"invalid status", confirmBooking.ErrInvalidStatus, http.StatusConflict},
		{"payment not succeeded", confirmBooking.ErrPaymentNotSucceeded, http.StatusUnprocessableEntity},
		{"amount mismatch", confirmBooking.ErrAmountMismatch, http.StatusUnprocessableEntity},
		{"coupon exhausted", confirmBooking.ErrCouponExhausted, http.StatusConflict},
		{"gateway down", confirmBooking.ErrPaymentGateway, http.StatusBadGateway},
		{"internal", confirmBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeUseCase{err: tt.err})
			rec := doConfirm(t, router, "/bookings/55/confirm", `{"paymentIntentId":"pi_123"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	rec := doConfirm(t, router, "/bookings/abc/confirm", `{"paymentIntentId":"pi_123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doConfirm(t, router, "/bookings/55/confirm", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RequiresAuth(t *testing.T) {
	router := newRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodPut, "/bookings/55/confirm", strings.NewReader(`{"paymentIntentId":"pi_123"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
