package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/models"
	"go.uber.org/zap"
)

// OrderService обслуживает заявки клиентов.
type OrderService struct {
	storage  orderStorage
	notifier OrderNotifier
}

type orderStorage interface {
	FindOrders(ctx context.Context) ([]models.Order, error)
	InsertOrder(ctx context.Context, inquiry models.Inquiry) (models.Order, error)
	FindOrderStatus(ctx context.Context, id int64) (models.OrderStatus, error)
	AdvanceOrderStatus(ctx context.Context, id int64, from, to models.OrderStatus) (bool, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// OrderNotifier сообщает оператору о новой заявке.
type OrderNotifier interface {
	NotifyNewOrder(order models.Order)
}

func NewOrderService(storage orderStorage, notifier OrderNotifier) *OrderService {
	return &OrderService{storage: storage, notifier: notifier}
}

func (o *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return o.storage.FindOrders(ctx)
}

// CreateOrder сохраняет заявку и ставит уведомление оператору в очередь.
func (o *OrderService) CreateOrder(ctx context.Context, inquiry models.Inquiry) (int64, error) {
	if inquiry.CustomerName == nil || *inquiry.CustomerName == "" {
		return 0, fmt.Errorf("%w: не указано имя клиента", models.ErrInvalidInput)
	}
	if inquiry.CustomerPhone == nil || *inquiry.CustomerPhone == "" {
		return 0, fmt.Errorf("%w: не указан телефон клиента", models.ErrInvalidInput)
	}

	order, err := o.storage.InsertOrder(ctx, inquiry)
	if err != nil {
		return 0, err
	}

	logger.Log.Info("order created", zap.Int64("id", order.ID))

	if o.notifier != nil {
		o.notifier.NotifyNewOrder(order)
	}

	return order.ID, nil
}

// UpdateOrderStatus двигает заказ вперёд: new -> in_progress -> completed.
// Повторная установка текущего статуса ничего не меняет.
func (o *OrderService) UpdateOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: неизвестный статус %q", models.ErrInvalidInput, status)
	}

	current, err := o.storage.FindOrderStatus(ctx, id)
	if err != nil {
		return err
	}

	if current == status {
		return nil
	}

	if !current.CanAdvanceTo(status) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidStatusTransition, current, status)
	}

	ok, err := o.storage.AdvanceOrderStatus(ctx, id, current, status)
	if err != nil {
		return err
	}
	if !ok {
		// Статус поменяли параллельно, либо заказ удалили.
		return fmt.Errorf("%w: статус заказа %d изменился", models.ErrInvalidStatusTransition, id)
	}

	return nil
}

func (o *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := o.storage.DeleteOrder(ctx, id); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			logger.Log.Error("failed to delete order", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}
	return nil
}
