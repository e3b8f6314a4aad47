package admin

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/Renal37/valerius-unlock/internal/utils"
)

// MockSource источник данных в памяти для работы админ-панели без удалённого API.
// Ведёт себя как удалённый сервис: назначает id, проверяет переходы статуса
// и возвращает models.ErrNotFound для неизвестных записей.
type MockSource struct {
	mu       sync.Mutex
	services []models.Service
	orders   []models.Order
	reviews  []models.Review
	nextID   int64
}

// NewMockSource создает источник с демонстрационными данными.
func NewMockSource() *MockSource {
	now := time.Now().UTC().Truncate(time.Second)
	at := func(d time.Duration) utils.RFC3339Date {
		return utils.RFC3339Date{Time: now.Add(-d)}
	}
	serviceID := func(id int64) *int64 { return &id }

	return &MockSource{
		services: []models.Service{
			{ID: 1, Title: "Разблокировка Mi Account", Description: "Удаление аккаунта Xiaomi с телефона любой модели",
				Price: 1500, Icon: "Smartphone", Category: "unlock", IsActive: true},
			{ID: 2, Title: "Разблокировка Google Account (FRP)", Description: "Bypass Factory Reset Protection на Android устройствах",
				Price: 1200, Icon: "Shield", Category: "unlock", IsActive: true},
			{ID: 3, Title: "Активация ПО", Description: "Активация и настройка программного обеспечения для работы",
				Price: 800, Icon: "Settings", Category: "software", IsActive: true},
			{ID: 4, Title: "Пополнение кредитов", Description: "Быстрое пополнение кредитов для программ разблокировки",
				Price: 500, Icon: "CreditCard", Category: "credits", IsActive: true},
			{ID: 5, Title: "Удалённая разблокировка", Description: "Разблокировка телефона удалённо через TeamViewer",
				Price: 2000, Icon: "Wifi", Category: "remote", IsActive: true},
			{ID: 6, Title: "Прошивка телефона", Description: "Установка официальной или кастомной прошивки",
				Price: 1000, Icon: "Download", Category: "firmware", IsActive: false},
		},
		orders: []models.Order{
			{ID: 3, CustomerName: "Ольга", CustomerPhone: "+7 900 555-44-33", PhoneModel: "Realme 9 Pro",
				Message: "Забыла пароль Google", ServiceID: serviceID(2), ServiceTitle: "Разблокировка Google Account (FRP)",
				Status: models.StatusNew, CreatedAt: at(2 * time.Hour)},
			{ID: 2, CustomerName: "Игорь", CustomerPhone: "+7 911 222-33-44", CustomerEmail: "igor@example.com",
				PhoneModel: "TECNO SPARK GO 2", ServiceID: serviceID(5), ServiceTitle: "Удалённая разблокировка",
				Status: models.StatusInProgress, CreatedAt: at(26 * time.Hour)},
			{ID: 1, CustomerName: "Анна", CustomerPhone: "+7 922 111-22-33", PhoneModel: "Redmi Note 12",
				IMEI: "356938035643809", ServiceID: serviceID(1), ServiceTitle: "Разблокировка Mi Account",
				Status: models.StatusCompleted, CreatedAt: at(72 * time.Hour)},
		},
		reviews: []models.Review{
			{ID: 3, CustomerName: "Сергей", Rating: 4, Comment: "Сделали за час, всё работает",
				PhoneModel: "INFINIX NOTE 40", CreatedAt: at(5 * time.Hour)},
			{ID: 2, CustomerName: "Мария", Rating: 5, Comment: "Разблокировали Honor удалённо, рекомендую",
				PhoneModel: "Honor Magic V2", IsPublished: true, CreatedAt: at(48 * time.Hour)},
			{ID: 1, CustomerName: "Дмитрий", Rating: 5, Comment: "Быстро и недорого",
				PhoneModel: "Vivo Y71A", IsPublished: true, CreatedAt: at(96 * time.Hour)},
		},
		nextID: 100,
	}
}

func (m *MockSource) ListServices(_ context.Context) ([]models.Service, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.services), nil
}

func (m *MockSource) ListOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.orders), nil
}

func (m *MockSource) ListReviews(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return slices.Clone(m.reviews), nil
}

func (m *MockSource) CreateService(_ context.Context, service models.Service) (int64, error) {
	if err := service.Validate(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	service.ID = m.nextID
	m.services = append(m.services, service)
	return service.ID, nil
}

func (m *MockSource) UpdateService(_ context.Context, service models.Service) error {
	if err := service.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !updateByID(m.services, service.ID, func(s *models.Service) { *s = service }) {
		return models.ErrNotFound
	}
	return nil
}

func (m *MockSource) DeleteService(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ok bool
	if m.services, ok = removeByID(m.services, id); !ok {
		return models.ErrNotFound
	}
	return nil
}

func (m *MockSource) DeleteOrder(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ok bool
	if m.orders, ok = removeByID(m.orders, id); !ok {
		return models.ErrNotFound
	}
	return nil
}

func (m *MockSource) UpdateOrderStatus(_ context.Context, id int64, status models.OrderStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	order, ok := findByID(m.orders, id)
	if !ok {
		return models.ErrNotFound
	}
	if order.Status == status {
		return nil
	}
	if !order.Status.CanAdvanceTo(status) {
		return models.ErrInvalidStatusTransition
	}

	updateByID(m.orders, id, func(o *models.Order) { o.Status = status })
	return nil
}

func (m *MockSource) SetReviewPublished(_ context.Context, id int64, published bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !updateByID(m.reviews, id, func(r *models.Review) { r.IsPublished = published }) {
		return models.ErrNotFound
	}
	return nil
}

func (m *MockSource) DeleteReview(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ok bool
	if m.reviews, ok = removeByID(m.reviews, id); !ok {
		return models.ErrNotFound
	}
	return nil
}
