package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"github.com/Renal37/valerius-unlock/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrLoadFailed   = errors.New("ошибка загрузки данных")
	ErrReloadFailed = errors.New("изменение сохранено, но данные не удалось обновить")
)

// Orchestrator выполняет запросы к источнику данных и согласует с ними Store.
// Повторов нет: ошибка запроса возвращается вызывающему, хранилище не меняется.
type Orchestrator struct {
	source    models.DataSource
	store     *Store
	policy    Policy
	portfolio func() []models.Video
}

func NewOrchestrator(source models.DataSource, store *Store, policy Policy) *Orchestrator {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &Orchestrator{
		source:    source,
		store:     store,
		policy:    policy,
		portfolio: Portfolio,
	}
}

func (o *Orchestrator) Store() *Store {
	return o.store
}

// LoadAll параллельно запрашивает услуги, заказы и отзывы. Хранилище обновляется
// только если успешны все три запроса. Видео берутся из встроенного портфолио.
func (o *Orchestrator) LoadAll(ctx context.Context) error {
	var (
		services []models.Service
		orders   []models.Order
		reviews  []models.Review
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		services, err = o.source.ListServices(gctx)
		return wrapCollection(CollectionServices, err)
	})
	g.Go(func() (err error) {
		orders, err = o.source.ListOrders(gctx)
		return wrapCollection(CollectionOrders, err)
	})
	g.Go(func() (err error) {
		reviews, err = o.source.ListReviews(gctx)
		return wrapCollection(CollectionReviews, err)
	})

	if err := g.Wait(); err != nil {
		logger.Log.Warn("failed to load admin data", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	return o.store.Replace(Snapshot{
		Services: services,
		Orders:   orders,
		Videos:   o.portfolio(),
		Reviews:  reviews,
	})
}

func wrapCollection(c Collection, err error) error {
	if err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	return nil
}

// Reload перечитывает одну коллекцию.
func (o *Orchestrator) Reload(ctx context.Context, c Collection) error {
	switch c {
	case CollectionServices:
		services, err := o.source.ListServices(ctx)
		if err != nil {
			return err
		}
		return o.store.ReplaceServices(services)
	case CollectionOrders:
		orders, err := o.source.ListOrders(ctx)
		if err != nil {
			return err
		}
		return o.store.ReplaceOrders(orders)
	case CollectionReviews:
		reviews, err := o.source.ListReviews(ctx)
		if err != nil {
			return err
		}
		return o.store.ReplaceReviews(reviews)
	}
	return fmt.Errorf("unknown collection %q", c)
}

// reconcile применяет политику согласования после успешного запроса.
func (o *Orchestrator) reconcile(ctx context.Context, op Operation) error {
	if o.policy.For(op) != ReconcileReload {
		return nil
	}

	if err := o.Reload(ctx, operationCollections[op]); err != nil {
		if errors.Is(err, ErrSessionClosed) {
			return err
		}
		logger.Log.Warn("reload after mutation failed", zap.String("operation", string(op)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrReloadFailed, err)
	}
	return nil
}

func (o *Orchestrator) alive() error {
	if o.store.Discarded() {
		return ErrSessionClosed
	}
	return nil
}

// applyLocal игнорирует отсутствие записи: сервер уже подтвердил изменение.
func applyLocal(err error) error {
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	return err
}

// removeStale вызывается, когда сервер не нашёл запись: локальная копия устарела.
func removeStale(remoteErr error, remove func(int64) error, id int64) error {
	if errors.Is(remoteErr, models.ErrNotFound) {
		if err := applyLocal(remove(id)); err != nil {
			return err
		}
	}
	return remoteErr
}

func (o *Orchestrator) DeleteOrder(ctx context.Context, id int64) error {
	if err := o.alive(); err != nil {
		return err
	}

	if err := o.source.DeleteOrder(ctx, id); err != nil {
		return removeStale(err, o.store.RemoveOrder, id)
	}

	if err := applyLocal(o.store.RemoveOrder(id)); err != nil {
		return err
	}

	logger.Log.Info("order deleted", zap.Int64("id", id))
	return o.reconcile(ctx, OpDeleteOrder)
}

// ChangeOrderStatus переводит заказ только на следующий шаг. Повторная установка
// текущего статуса ничего не делает.
func (o *Orchestrator) ChangeOrderStatus(ctx context.Context, id int64, status models.OrderStatus) error {
	if err := o.alive(); err != nil {
		return err
	}

	if !status.Valid() {
		return fmt.Errorf("%w: неизвестный статус %q", models.ErrInvalidInput, status)
	}

	current, ok := o.store.Order(id)
	if !ok {
		return models.ErrNotFound
	}
	if current.Status == status {
		return nil
	}
	if !current.Status.CanAdvanceTo(status) {
		return fmt.Errorf("%w: %s -> %s", models.ErrInvalidStatusTransition, current.Status, status)
	}

	if err := o.source.UpdateOrderStatus(ctx, id, status); err != nil {
		return err
	}

	if err := applyLocal(o.store.SetOrderStatus(id, status)); err != nil {
		return err
	}

	logger.Log.Info("order status changed", zap.Int64("id", id), zap.String("status", string(status)))
	return o.reconcile(ctx, OpChangeOrderStatus)
}

// StartOrder new -> in_progress.
func (o *Orchestrator) StartOrder(ctx context.Context, id int64) error {
	return o.ChangeOrderStatus(ctx, id, models.StatusInProgress)
}

// FinishOrder in_progress -> completed.
func (o *Orchestrator) FinishOrder(ctx context.Context, id int64) error {
	return o.ChangeOrderStatus(ctx, id, models.StatusCompleted)
}

func (o *Orchestrator) SetReviewPublished(ctx context.Context, id int64, published bool) error {
	if err := o.alive(); err != nil {
		return err
	}

	if err := o.source.SetReviewPublished(ctx, id, published); err != nil {
		return err
	}

	if err := applyLocal(o.store.SetReviewPublished(id, published)); err != nil {
		return err
	}

	logger.Log.Info("review moderated", zap.Int64("id", id), zap.Bool("published", published))
	return o.reconcile(ctx, OpSetReviewPublished)
}

func (o *Orchestrator) DeleteReview(ctx context.Context, id int64) error {
	if err := o.alive(); err != nil {
		return err
	}

	if err := o.source.DeleteReview(ctx, id); err != nil {
		return removeStale(err, o.store.RemoveReview, id)
	}

	if err := applyLocal(o.store.RemoveReview(id)); err != nil {
		return err
	}

	logger.Log.Info("review deleted", zap.Int64("id", id))
	return o.reconcile(ctx, OpDeleteReview)
}

// CreateService возвращает id, назначенный сервером.
func (o *Orchestrator) CreateService(ctx context.Context, service models.Service) (int64, error) {
	if err := o.alive(); err != nil {
		return 0, err
	}
	if err := service.Validate(); err != nil {
		return 0, err
	}

	id, err := o.source.CreateService(ctx, service)
	if err != nil {
		return 0, err
	}

	service.ID = id
	if err := o.store.PutService(service); err != nil {
		return id, err
	}

	logger.Log.Info("service created", zap.Int64("id", id))
	return id, o.reconcile(ctx, OpCreateService)
}

func (o *Orchestrator) UpdateService(ctx context.Context, service models.Service) error {
	if err := o.alive(); err != nil {
		return err
	}
	if err := service.Validate(); err != nil {
		return err
	}

	if err := o.source.UpdateService(ctx, service); err != nil {
		return err
	}

	if err := o.store.PutService(service); err != nil {
		return err
	}

	logger.Log.Info("service updated", zap.Int64("id", service.ID))
	return o.reconcile(ctx, OpUpdateService)
}

func (o *Orchestrator) DeleteService(ctx context.Context, id int64) error {
	if err := o.alive(); err != nil {
		return err
	}

	if err := o.source.DeleteService(ctx, id); err != nil {
		return removeStale(err, o.store.RemoveService, id)
	}

	if err := applyLocal(o.store.RemoveService(id)); err != nil {
		return err
	}

	logger.Log.Info("service deleted", zap.Int64("id", id))
	return o.reconcile(ctx, OpDeleteService)
}

// UpdateStats статистика живёт только в сессии и на сервер не отправляется.
func (o *Orchestrator) UpdateStats(stats models.Stats) error {
	return o.store.SetStats(stats)
}
