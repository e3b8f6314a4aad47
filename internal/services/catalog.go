package services

import (
	"context"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/models"
)

// CatalogService управляет каталогом услуг.
type CatalogService struct {
	storage catalogStorage
}

type catalogStorage interface {
	FindServices(ctx context.Context, includeInactive bool) ([]models.Service, error)
	InsertService(ctx context.Context, service models.Service) (int64, error)
	UpdateService(ctx context.Context, service models.Service) error
	DeleteService(ctx context.Context, id int64) error
}

func NewCatalogService(storage catalogStorage) *CatalogService {
	return &CatalogService{storage: storage}
}

// ListServices возвращает активные услуги, а при includeInactive все.
func (c *CatalogService) ListServices(ctx context.Context, includeInactive bool) ([]models.Service, error) {
	return c.storage.FindServices(ctx, includeInactive)
}

func (c *CatalogService) CreateService(ctx context.Context, service models.Service) (int64, error) {
	if err := service.Validate(); err != nil {
		return 0, err
	}

	id, err := c.storage.InsertService(ctx, service)
	if err != nil {
		return 0, fmt.Errorf("не удалось создать услугу: %w", err)
	}

	return id, nil
}

func (c *CatalogService) UpdateService(ctx context.Context, service models.Service) error {
	if service.ID <= 0 {
		return fmt.Errorf("%w: не указан id услуги", models.ErrInvalidInput)
	}
	if err := service.Validate(); err != nil {
		return err
	}

	return c.storage.UpdateService(ctx, service)
}

func (c *CatalogService) DeleteService(ctx context.Context, id int64) error {
	return c.storage.DeleteService(ctx, id)
}
