package admin

import (
	"errors"
	"slices"
	"sync"

	"github.com/Renal37/valerius-unlock/internal/models"
)

var ErrSessionClosed = errors.New("сессия администратора завершена")

// Snapshot содержимое всех коллекций на один момент.
type Snapshot struct {
	Services []models.Service
	Orders   []models.Order
	Videos   []models.Video
	Reviews  []models.Review
}

// Store копия серверных коллекций в памяти одной сессии администратора.
// Читатели получают копии. После Discard все изменения отклоняются с ErrSessionClosed.
type Store struct {
	mu        sync.RWMutex
	services  []models.Service
	orders    []models.Order
	videos    []models.Video
	reviews   []models.Review
	stats     models.Stats
	discarded bool
}

func NewStore() *Store {
	return &Store{
		services: []models.Service{},
		orders:   []models.Order{},
		videos:   []models.Video{},
		reviews:  []models.Review{},
		stats:    models.DefaultStats(),
	}
}

type identifiable interface {
	GetID() int64
}

func removeByID[T identifiable](items []T, id int64) ([]T, bool) {
	for i, item := range items {
		if item.GetID() == id {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}

func updateByID[T identifiable](items []T, id int64, update func(*T)) bool {
	for i := range items {
		if items[i].GetID() == id {
			update(&items[i])
			return true
		}
	}
	return false
}

func findByID[T identifiable](items []T, id int64) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return slices.Clone(items)
}

// write выполняет fn под блокировкой записи, если хранилище ещё живо.
func (s *Store) write(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.discarded {
		return ErrSessionClosed
	}
	return fn()
}

// Replace заменяет все четыре коллекции целиком.
func (s *Store) Replace(snapshot Snapshot) error {
	return s.write(func() error {
		s.services = orEmpty(snapshot.Services)
		s.orders = orEmpty(snapshot.Orders)
		s.videos = orEmpty(snapshot.Videos)
		s.reviews = orEmpty(snapshot.Reviews)
		return nil
	})
}

func (s *Store) ReplaceServices(services []models.Service) error {
	return s.write(func() error {
		s.services = orEmpty(services)
		return nil
	})
}

func (s *Store) ReplaceOrders(orders []models.Order) error {
	return s.write(func() error {
		s.orders = orEmpty(orders)
		return nil
	})
}

func (s *Store) ReplaceReviews(reviews []models.Review) error {
	return s.write(func() error {
		s.reviews = orEmpty(reviews)
		return nil
	})
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		Services: slices.Clone(s.services),
		Orders:   slices.Clone(s.orders),
		Videos:   slices.Clone(s.videos),
		Reviews:  slices.Clone(s.reviews),
	}
}

func (s *Store) Services() []models.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.services)
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.orders)
}

func (s *Store) Videos() []models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.videos)
}

func (s *Store) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.reviews)
}

func (s *Store) Order(id int64) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findByID(s.orders, id)
}

func (s *Store) RemoveOrder(id int64) error {
	return s.write(func() error {
		var ok bool
		if s.orders, ok = removeByID(s.orders, id); !ok {
			return models.ErrNotFound
		}
		return nil
	})
}

func (s *Store) SetOrderStatus(id int64, status models.OrderStatus) error {
	return s.write(func() error {
		if !updateByID(s.orders, id, func(o *models.Order) { o.Status = status }) {
			return models.ErrNotFound
		}
		return nil
	})
}

func (s *Store) SetReviewPublished(id int64, published bool) error {
	return s.write(func() error {
		if !updateByID(s.reviews, id, func(r *models.Review) { r.IsPublished = published }) {
			return models.ErrNotFound
		}
		return nil
	})
}

func (s *Store) RemoveReview(id int64) error {
	return s.write(func() error {
		var ok bool
		if s.reviews, ok = removeByID(s.reviews, id); !ok {
			return models.ErrNotFound
		}
		return nil
	})
}

// PutService заменяет услугу с тем же id или добавляет её в конец.
func (s *Store) PutService(service models.Service) error {
	return s.write(func() error {
		if !updateByID(s.services, service.ID, func(existing *models.Service) { *existing = service }) {
			s.services = append(s.services, service)
		}
		return nil
	})
}

func (s *Store) RemoveService(id int64) error {
	return s.write(func() error {
		var ok bool
		if s.services, ok = removeByID(s.services, id); !ok {
			return models.ErrNotFound
		}
		return nil
	})
}

func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.stats
}

// SetStats сохраняет ручные значения статистики без проверки диапазонов.
func (s *Store) SetStats(stats models.Stats) error {
	return s.write(func() error {
		s.stats = stats
		return nil
	})
}

func (s *Store) Dashboard() models.Dashboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := models.Dashboard{Stats: s.stats}
	for _, o := range s.orders {
		if o.Status == models.StatusNew {
			d.NewOrders++
		}
	}
	for _, r := range s.reviews {
		if !r.IsPublished {
			d.PendingReviews++
		}
	}
	return d
}

// Discard отключает хранилище; данные больше не нужны.
func (s *Store) Discard() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discarded = true
	s.services, s.orders, s.videos, s.reviews = nil, nil, nil, nil
}

func (s *Store) Discarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.discarded
}
