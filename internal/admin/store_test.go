package admin

import (
	"sync"
	"testing"

	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Services: []models.Service{
			{ID: 1, Title: "Mi Account", Price: 1500, IsActive: true},
			{ID: 2, Title: "FRP", Price: 1200, IsActive: true},
		},
		Orders: []models.Order{
			{ID: 10, CustomerName: "Анна", CustomerPhone: "+79990000010", PhoneModel: "Redmi Note 12", Status: models.StatusNew},
			{ID: 11, CustomerName: "Игорь", CustomerPhone: "+79990000011", PhoneModel: "Samsung A52", Status: models.StatusInProgress},
			{ID: 12, CustomerName: "Ольга", CustomerPhone: "+79990000012", PhoneModel: "Honor 50", Status: models.StatusNew},
		},
		Videos: Portfolio(),
		Reviews: []models.Review{
			{ID: 20, CustomerName: "Мария", Rating: 5, IsPublished: true},
			{ID: 21, CustomerName: "Сергей", Rating: 4},
		},
	}
}

// ordersWithStatus возвращает заказы sampleSnapshot, где у заказа id изменён только статус.
func ordersWithStatus(id int64, status models.OrderStatus) []models.Order {
	orders := sampleSnapshot().Orders
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
		}
	}
	return orders
}

func orderIDs(orders []models.Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}
	return ids
}

func TestNewStoreIsEmpty(t *testing.T) {
	store := NewStore()
	snapshot := store.Snapshot()

	assert.NotNil(t, snapshot.Services)
	assert.Empty(t, snapshot.Services)
	assert.Empty(t, snapshot.Orders)
	assert.Empty(t, snapshot.Videos)
	assert.Empty(t, snapshot.Reviews)
	assert.Equal(t, models.DefaultStats(), store.Stats())
}

func TestStoreReplaceNilGivesEmptyCollections(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace(Snapshot{}))

	assert.NotNil(t, store.Orders())
	assert.Len(t, store.Orders(), 0)
}

func TestStoreReadersReturnCopies(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace(sampleSnapshot()))

	orders := store.Orders()
	orders[0].Status = models.StatusCompleted

	order, ok := store.Order(10)
	require.True(t, ok)
	assert.Equal(t, models.StatusNew, order.Status)
}

func TestStoreMutations(t *testing.T) {
	testCases := []struct {
		testName    string
		mutate      func(s *Store) error
		expectedErr error
		check       func(t *testing.T, s *Store)
	}{
		{
			testName: "Should remove order",
			mutate:   func(s *Store) error { return s.RemoveOrder(11) },
			check: func(t *testing.T, s *Store) {
				_, ok := s.Order(11)
				assert.False(t, ok)
				assert.Equal(t, []int64{10, 12}, orderIDs(s.Orders()))
			},
		},
		{
			testName:    "Should report missing order on remove",
			mutate:      func(s *Store) error { return s.RemoveOrder(99) },
			expectedErr: models.ErrNotFound,
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, sampleSnapshot().Orders, s.Orders())
			},
		},
		{
			testName: "Should set order status",
			mutate:   func(s *Store) error { return s.SetOrderStatus(10, models.StatusInProgress) },
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, ordersWithStatus(10, models.StatusInProgress), s.Orders())
			},
		},
		{
			testName:    "Should report missing order on status change",
			mutate:      func(s *Store) error { return s.SetOrderStatus(99, models.StatusInProgress) },
			expectedErr: models.ErrNotFound,
			check: func(t *testing.T, s *Store) {
				assert.Equal(t, sampleSnapshot().Orders, s.Orders())
			},
		},
		{
			testName: "Should publish review",
			mutate:   func(s *Store) error { return s.SetReviewPublished(21, true) },
			check: func(t *testing.T, s *Store) {
				assert.True(t, s.Reviews()[1].IsPublished)
			},
		},
		{
			testName: "Should remove review",
			mutate:   func(s *Store) error { return s.RemoveReview(20) },
			check: func(t *testing.T, s *Store) {
				reviews := s.Reviews()
				require.Len(t, reviews, 1)
				assert.Equal(t, int64(21), reviews[0].ID)
			},
		},
		{
			testName:    "Should report missing review",
			mutate:      func(s *Store) error { return s.RemoveReview(99) },
			expectedErr: models.ErrNotFound,
		},
		{
			testName: "Should append new service",
			mutate:   func(s *Store) error { return s.PutService(models.Service{ID: 3, Title: "Прошивка", Price: 1000}) },
			check: func(t *testing.T, s *Store) {
				services := s.Services()
				require.Len(t, services, 3)
				assert.Equal(t, "Прошивка", services[2].Title)
			},
		},
		{
			testName: "Should replace existing service in place",
			mutate:   func(s *Store) error { return s.PutService(models.Service{ID: 1, Title: "Mi Account 2", Price: 1700}) },
			check: func(t *testing.T, s *Store) {
				services := s.Services()
				require.Len(t, services, 2)
				assert.Equal(t, "Mi Account 2", services[0].Title)
				assert.Equal(t, models.Price(1700), services[0].Price)
			},
		},
		{
			testName:    "Should report missing service",
			mutate:      func(s *Store) error { return s.RemoveService(99) },
			expectedErr: models.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			store := NewStore()
			require.NoError(t, store.Replace(sampleSnapshot()))

			err := tc.mutate(store)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			if tc.check != nil {
				tc.check(t, store)
			}
		})
	}
}

func TestStoreDashboard(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace(sampleSnapshot()))

	dashboard := store.Dashboard()

	assert.Equal(t, 2, dashboard.NewOrders)
	assert.Equal(t, 1, dashboard.PendingReviews)
	assert.Equal(t, models.DefaultStats(), dashboard.Stats)

	stats := models.Stats{Unlocks: -5, Clients: 0, SuccessRate: 150}
	require.NoError(t, store.SetStats(stats))
	assert.Equal(t, stats, store.Dashboard().Stats)
}

func TestStoreDiscard(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace(sampleSnapshot()))

	store.Discard()

	assert.True(t, store.Discarded())
	assert.Empty(t, store.Orders())
	assert.ErrorIs(t, store.RemoveOrder(10), ErrSessionClosed)
	assert.ErrorIs(t, store.Replace(sampleSnapshot()), ErrSessionClosed)
	assert.ErrorIs(t, store.SetStats(models.Stats{}), ErrSessionClosed)
	assert.Empty(t, store.Orders())
}

func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Replace(sampleSnapshot()))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int64) {
			defer wg.Done()
			_ = store.PutService(models.Service{ID: id, Title: "s", Price: 1})
		}(int64(100 + i))
		go func() {
			defer wg.Done()
			_ = store.Dashboard()
			_ = store.Services()
		}()
	}
	wg.Wait()

	assert.Len(t, store.Services(), 52)
}
