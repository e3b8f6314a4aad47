package router

import (
	"context"
	"errors"
	"net/http"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/middlewares"
	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Config struct {
	// Endpoint адрес и порт, на которых сервер слушает входящие запросы.
	Endpoint string
	// AllowedOrigins источники, которым разрешены кросс-доменные запросы.
	AllowedOrigins []string
	// DataAPIKey ключ для закрытых методов API данных. Пустой ключ отключает проверку.
	DataAPIKey string
}

type Router struct {
	config   Config
	services middlewares.Services
	server   *http.Server
}

// New создает Router. API данных подключается, только если заданы все три сервиса данных.
func New(config Config, services middlewares.Services) *Router {
	if len(config.AllowedOrigins) == 0 {
		config.AllowedOrigins = []string{"*"}
	}

	router := &Router{config: config, services: services}
	router.server = &http.Server{
		Addr:    config.Endpoint,
		Handler: router.get(),
	}
	return router
}

func (router *Router) dataAPIEnabled() bool {
	return router.services.Catalog != nil && router.services.Orders != nil && router.services.Reviews != nil
}

func (router *Router) get() chi.Router {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		logger.RequestLogger,
		middleware.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: router.config.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Authorization", middlewares.APIKeyHeader},
			ExposedHeaders: []string{"Authorization"},
			MaxAge:         86400,
		}),
		middlewares.ServiceInjectorMiddleware(router.services),
	)

	if router.dataAPIEnabled() {
		router.mountDataAPI(r)
	}

	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware().WithExcludedPaths("/api/admin/login").Middleware)

		r.With(middlewares.JSONMiddleware[models.Credentials]).Post("/login", AdminLogin)
		r.Post("/logout", AdminLogout)

		r.Get("/dashboard", AdminDashboard)
		r.Post("/reload", AdminReload)
		r.With(middlewares.JSONMiddleware[models.Stats]).Put("/stats", AdminUpdateStats)

		r.Get("/services", AdminListServices)
		r.With(middlewares.JSONMiddleware[serviceRequest]).Post("/services", AdminCreateService)
		r.With(middlewares.JSONMiddleware[serviceRequest]).Put("/services/{id}", AdminUpdateService)
		r.Delete("/services/{id}", AdminDeleteService)

		r.Get("/orders", AdminListOrders)
		r.Delete("/orders/{id}", AdminDeleteOrder)
		r.With(middlewares.JSONMiddleware[models.OrderStatusUpdate]).Put("/orders/{id}/status", AdminChangeOrderStatus)
		r.Post("/orders/{id}/start", AdminStartOrder)
		r.Post("/orders/{id}/finish", AdminFinishOrder)

		r.Get("/videos", AdminListVideos)

		r.Get("/reviews", AdminListReviews)
		r.With(middlewares.JSONMiddleware[models.ReviewModeration]).Put("/reviews/{id}/published", AdminSetReviewPublished)
		r.Delete("/reviews/{id}", AdminDeleteReview)
	})

	return r
}

// mountDataAPI публичные методы открыты, остальные требуют ключ API.
func (router *Router) mountDataAPI(r chi.Router) {
	requireKey := middlewares.APIKeyMiddleware(router.config.DataAPIKey)
	requireKeyForAll := func(next http.Handler) http.Handler {
		protected := requireKey(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if includeAll(r) {
				protected.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}

	r.Route("/api/services", func(r chi.Router) {
		r.With(requireKeyForAll).Get("/", ListServices)
		r.With(requireKey, middlewares.JSONMiddleware[serviceRequest]).Post("/", CreateService)
		r.With(requireKey, middlewares.JSONMiddleware[serviceRequest]).Put("/", UpdateService)
		r.With(requireKey).Delete("/", DeleteService)
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.With(requireKey).Get("/", ListOrders)
		r.With(middlewares.JSONMiddleware[models.Inquiry]).Post("/", CreateOrder)
		r.With(requireKey, middlewares.JSONMiddleware[models.OrderStatusUpdate]).Put("/", UpdateOrderStatus)
		r.With(requireKey).Delete("/", DeleteOrder)
	})

	r.Route("/api/reviews", func(r chi.Router) {
		r.With(requireKeyForAll).Get("/", ListReviews)
		r.With(middlewares.JSONMiddleware[models.ReviewDraft]).Post("/", CreateReview)
		r.With(requireKey, middlewares.JSONMiddleware[models.ReviewModeration]).Put("/", SetReviewPublished)
		r.With(requireKey).Delete("/", DeleteReview)
	})
}

// Run блокирует до остановки сервера через Shutdown.
func (router *Router) Run() error {
	logger.Log.Info("running server",
		zap.String("address", router.config.Endpoint),
		zap.Bool("data_api", router.dataAPIEnabled()),
	)

	if err := router.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (router *Router) Shutdown(ctx context.Context) error {
	return router.server.Shutdown(ctx)
}
