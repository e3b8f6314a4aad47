package admin

// Operation изменяющее действие администратора.
type Operation string

const (
	OpDeleteOrder        Operation = "delete_order"
	OpChangeOrderStatus  Operation = "change_order_status"
	OpSetReviewPublished Operation = "set_review_published"
	OpDeleteReview       Operation = "delete_review"
	OpCreateService      Operation = "create_service"
	OpUpdateService      Operation = "update_service"
	OpDeleteService      Operation = "delete_service"
)

// Collection серверная коллекция, которую затрагивает операция.
type Collection string

const (
	CollectionServices Collection = "services"
	CollectionOrders   Collection = "orders"
	CollectionReviews  Collection = "reviews"
)

var operationCollections = map[Operation]Collection{
	OpDeleteOrder:        CollectionOrders,
	OpChangeOrderStatus:  CollectionOrders,
	OpSetReviewPublished: CollectionReviews,
	OpDeleteReview:       CollectionReviews,
	OpCreateService:      CollectionServices,
	OpUpdateService:      CollectionServices,
	OpDeleteService:      CollectionServices,
}

// Reconcile как согласовать хранилище после успешного запроса.
type Reconcile int

const (
	// ReconcileLocal оставить локальное изменение как есть.
	ReconcileLocal Reconcile = iota
	// ReconcileReload применить локальное изменение и перечитать коллекцию с сервера.
	ReconcileReload
)

func (r Reconcile) String() string {
	if r == ReconcileReload {
		return "reload"
	}
	return "local"
}

// Policy таблица согласования по операциям. Операции, которых нет в таблице, согласуются локально.
type Policy map[Operation]Reconcile

// DefaultPolicy модерация отзыва может повлечь изменения на сервере, а id новой услуги
// назначает сервер, поэтому эти коллекции перечитываются.
func DefaultPolicy() Policy {
	return Policy{
		OpDeleteOrder:        ReconcileLocal,
		OpChangeOrderStatus:  ReconcileLocal,
		OpSetReviewPublished: ReconcileReload,
		OpDeleteReview:       ReconcileLocal,
		OpCreateService:      ReconcileReload,
		OpUpdateService:      ReconcileLocal,
		OpDeleteService:      ReconcileLocal,
	}
}

func (p Policy) For(op Operation) Reconcile {
	return p[op]
}
