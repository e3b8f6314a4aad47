package middlewares

import (
	"crypto/subtle"
	"net/http"
)

const APIKeyHeader = "X-Api-Key"

// APIKeyMiddleware требует заголовок X-Api-Key, совпадающий с apiKey. Пустой ключ отключает проверку.
func APIKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if apiKey == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(APIKeyHeader)

			if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				EncodeJSONError(w, http.StatusUnauthorized, "Неверный ключ API")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
