package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/HalisahaBookingService/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет токен администратора для защищённых маршрутов.
// Токен сравнивается за константное время
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, "missing admin token")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "invalid admin token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
