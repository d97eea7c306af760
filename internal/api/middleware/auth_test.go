package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zumipet/ZMI-BookingService/internal/api/middleware"
)

func newProtectedRouter(events *middleware.AuthEvents, seen *int64) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Auth(events))
	r.HandleFunc("/bookings", func(w http.ResponseWriter, req *http.Request) {
		userID, ok := middleware.GetUserID(req.Context())
		if ok {
			*seen = userID
		}
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)
	return r
}

func TestAuth_ValidHeader(t *testing.T) {
	var seen int64
	router := newProtectedRouter(middleware.NewAuthEvents(), &seen)

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set(middleware.UserIDHeader, "42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), seen)
}

func TestAuth_RejectsAndPublishes(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"отсутствует заголовок", ""},
		{"не число", "abc"},
		{"не положительный", "-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := middleware.NewAuthEvents()
			ch, unsubscribe := events.Subscribe()
			defer unsubscribe()

			var seen int64
			router := newProtectedRouter(events, &seen)

			req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
			if tt.header != "" {
				req.Header.Set(middleware.UserIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Zero(t, seen)

			// Отказ опубликован подписчикам
			select {
			case event := <-ch:
				assert.Equal(t, "/bookings", event.Path)
				assert.NotEmpty(t, event.Reason)
			default:
				t.Fatal("expected auth event")
			}
		})
	}
}

func TestAuthEvents_SlowSubscriberDoesNotBlock(t *testing.T) {
	events := middleware.NewAuthEvents()
	ch, unsubscribe := events.Subscribe()
	defer unsubscribe()

	// Переполняем буфер подписчика - Publish не должен блокироваться
	for i := 0; i < 100; i++ {
		events.Publish(middleware.AuthEvent{Path: "/x", Reason: "missing user id header"})
	}

	require.Len(t, ch, 16, "буфер ограничен, лишние события отбрасываются")
}

func TestAuthEvents_Unsubscribe(t *testing.T) {
	events := middleware.NewAuthEvents()
	ch, unsubscribe := events.Subscribe()

	unsubscribe()
	events.Publish(middleware.AuthEvent{Path: "/x", Reason: "missing user id header"})

	_, open := <-ch
	assert.False(t, open, "канал закрыт после отписки")

	// Повторная отписка безопасна
	unsubscribe()
}
