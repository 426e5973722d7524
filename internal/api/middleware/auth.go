package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/chayanin-p/TBN-AppointmentService/internal/api/handlers"
)

// HeaderUserID заголовок с ID аутентифицированного пользователя
// Заголовок выставляет API gateway после проверки сессии
const HeaderUserID = "X-User-ID"

type contextKey string

const userIDKey contextKey = "userID"

const msgUnauthorized = "ต้องเข้าสู่ระบบก่อนใช้งาน"

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}
