package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

//go:generate mockgen -destination=mocks/mock_catalog.go . CatalogService
type CatalogService interface {
	ListServices(ctx context.Context, includeInactive bool) ([]Service, error)

	CreateService(ctx context.Context, service Service) (int64, error)

	UpdateService(ctx context.Context, service Service) error

	DeleteService(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_order.go . OrderService
type OrderService interface {
	ListOrders(ctx context.Context) ([]Order, error)

	CreateOrder(ctx context.Context, inquiry Inquiry) (int64, error)

	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) error

	DeleteOrder(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_review.go . ReviewService
type ReviewService interface {
	ListReviews(ctx context.Context, includeUnpublished bool) ([]Review, error)

	CreateReview(ctx context.Context, draft ReviewDraft) (int64, error)

	SetPublished(ctx context.Context, id int64, published bool) error

	DeleteReview(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_jwt.go . JWTService
type JWTService interface {
	GenerateJWT(subject string) (string, error)

	ValidateToken(token string) (*jwt.Token, error)
}

// DataSource источник данных админ-панели: удалённый API или встроенные тестовые данные.
//
//go:generate mockgen -destination=mocks/mock_data_source.go . DataSource
type DataSource interface {
	ListServices(ctx context.Context) ([]Service, error)

	ListOrders(ctx context.Context) ([]Order, error)

	ListReviews(ctx context.Context) ([]Review, error)

	CreateService(ctx context.Context, service Service) (int64, error)

	UpdateService(ctx context.Context, service Service) error

	DeleteService(ctx context.Context, id int64) error

	DeleteOrder(ctx context.Context, id int64) error

	UpdateOrderStatus(ctx context.Context, id int64, status OrderStatus) error

	SetReviewPublished(ctx context.Context, id int64, published bool) error

	DeleteReview(ctx context.Context, id int64) error
}

type Credentials struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// CredentialVerifier решает, пускать ли пользователя в админ-панель.
//
//go:generate mockgen -destination=mocks/mock_verifier.go . CredentialVerifier
type CredentialVerifier interface {
	Verify(ctx context.Context, credentials Credentials) (bool, error)
}
