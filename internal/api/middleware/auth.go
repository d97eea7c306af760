package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/zumipet/ZMI-BookingService/internal/api/handlers"
)

// UserIDHeader заголовок с ID аутентифицированного пользователя.
// Проверку токена выполняет внешний контур (API gateway), сюда приходит
// уже проверенный ID.
const UserIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth middleware аутентификации: извлекает ID пользователя из заголовка.
// Отказы публикуются в events, чтобы подписчики (логирование, клиентские
// сессии) могли отреагировать.
func Auth(events *AuthEvents) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(UserIDHeader)
			if raw == "" {
				publishRejection(events, r, "missing user id header")
				handlers.RespondUnauthorized(w, "отсутствует заголовок X-User-ID")
				return
			}

			userID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || userID <= 0 {
				publishRejection(events, r, "invalid user id header")
				handlers.RespondUnauthorized(w, "некорректный заголовок X-User-ID")
				return
			}

			ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID возвращает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int64)
	return userID, ok
}

func publishRejection(events *AuthEvents, r *http.Request, reason string) {
	if events == nil {
		return
	}
	events.Publish(AuthEvent{
		Path:   r.URL.Path,
		Reason: reason,
		At:     time.Now(),
	})
}
