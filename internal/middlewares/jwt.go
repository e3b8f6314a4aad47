package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/Renal37/valerius-unlock/internal/services"
)

type sessionFieldType string

const (
	consoleField   sessionFieldType = "consoleField"
	sessionIDField sessionFieldType = "sessionIDField"
)

// AuthMiddlewareConfig настройки проверки токена админ-панели.
type AuthMiddlewareConfig struct {
	excludePaths []string
}

func AuthMiddleware() *AuthMiddlewareConfig {
	return &AuthMiddlewareConfig{}
}

// WithExcludedPaths пути, доступные без токена.
func (a *AuthMiddlewareConfig) WithExcludedPaths(paths ...string) *AuthMiddlewareConfig {
	a.excludePaths = paths
	return a
}

// Middleware проверяет Bearer-токен и находит сессию по его subject.
// Консоль сессии и её id кладутся в контекст запроса.
func (a *AuthMiddlewareConfig) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, path := range a.excludePaths {
			if strings.HasPrefix(r.URL.Path, path) {
				next.ServeHTTP(w, r)
				return
			}
		}

		jwtService := GetServiceFromContext[models.JWTService](w, r, JWTServiceKey)
		if jwtService == nil {
			return
		}
		sessions := GetServiceFromContext[*admin.Sessions](w, r, SessionsKey)
		if sessions == nil {
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "Требуется заголовок Authorization")
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "Токен Bearer пуст")
			return
		}

		token, err := (*jwtService).ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, services.ErrTokenIsExpired) {
				EncodeJSONError(w, http.StatusUnauthorized, "Токен истёк")
				return
			}

			EncodeJSONError(w, http.StatusUnauthorized, "Неверный токен")
			return
		}

		sessionID, err := token.Claims.GetSubject()
		if err != nil || sessionID == "" {
			EncodeJSONError(w, http.StatusUnauthorized, "В токене нет идентификатора сессии")
			return
		}

		console, ok := (*sessions).Get(sessionID)
		if !ok {
			EncodeJSONError(w, http.StatusUnauthorized, "Сессия завершена, войдите снова")
			return
		}

		ctx := context.WithValue(r.Context(), consoleField, console)
		ctx = context.WithValue(ctx, sessionIDField, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetConsoleFromContext возвращает консоль текущей сессии или отвечает 500 и возвращает nil.
func GetConsoleFromContext(w http.ResponseWriter, r *http.Request) *admin.Console {
	console, ok := r.Context().Value(consoleField).(*admin.Console)

	if !ok {
		EncodeJSONError(w, http.StatusInternalServerError, "Не удалось получить сессию из контекста")
		return nil
	}

	return console
}

func GetSessionIDFromContext(r *http.Request) string {
	id, _ := r.Context().Value(sessionIDField).(string)
	return id
}
