package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/admin"
	"github.com/Renal37/valerius-unlock/internal/models"
)

type key int

const (
	CatalogServiceKey key = iota
	OrderServiceKey
	ReviewServiceKey
	JWTServiceKey
	SessionsKey
)

// Services зависимости обработчиков. Сервисы данных равны nil, если база не настроена.
type Services struct {
	Catalog  models.CatalogService
	Orders   models.OrderService
	Reviews  models.ReviewService
	JWT      models.JWTService
	Sessions *admin.Sessions
}

func ServiceInjectorMiddleware(services Services) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if services.Catalog != nil {
				ctx = context.WithValue(ctx, CatalogServiceKey, services.Catalog)
			}
			if services.Orders != nil {
				ctx = context.WithValue(ctx, OrderServiceKey, services.Orders)
			}
			if services.Reviews != nil {
				ctx = context.WithValue(ctx, ReviewServiceKey, services.Reviews)
			}
			ctx = context.WithValue(ctx, JWTServiceKey, services.JWT)
			ctx = context.WithValue(ctx, SessionsKey, services.Sessions)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetServiceFromContext возвращает сервис по ключу. Если сервиса нет, отвечает 500 и возвращает nil.
func GetServiceFromContext[Service interface{}](w http.ResponseWriter, r *http.Request, serviceKey key) *Service {
	foundService, ok := r.Context().Value(serviceKey).(Service)

	if !ok {
		EncodeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("Сервис не найден в контексте по ключу %v", serviceKey))
		return nil
	}

	return &foundService
}
