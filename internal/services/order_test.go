package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Renal37/valerius-unlock/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderStorage struct {
	orders     map[int64]models.Order
	nextID     int64
	advanceErr error
	advanced   int
}

func newFakeOrderStorage(orders ...models.Order) *fakeOrderStorage {
	storage := &fakeOrderStorage{orders: map[int64]models.Order{}, nextID: 100}
	for _, o := range orders {
		storage.orders[o.ID] = o
	}
	return storage
}

func (s *fakeOrderStorage) FindOrders(context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		orders = append(orders, o)
	}
	return orders, nil
}

func (s *fakeOrderStorage) InsertOrder(_ context.Context, inquiry models.Inquiry) (models.Order, error) {
	s.nextID++
	order := models.Order{
		ID:            s.nextID,
		CustomerName:  *inquiry.CustomerName,
		CustomerPhone: *inquiry.CustomerPhone,
		PhoneModel:    inquiry.PhoneModel,
		Status:        models.StatusNew,
	}
	s.orders[order.ID] = order
	return order, nil
}

func (s *fakeOrderStorage) FindOrderStatus(_ context.Context, id int64) (models.OrderStatus, error) {
	order, ok := s.orders[id]
	if !ok {
		return "", models.ErrNotFound
	}
	return order.Status, nil
}

func (s *fakeOrderStorage) AdvanceOrderStatus(_ context.Context, id int64, from, to models.OrderStatus) (bool, error) {
	s.advanced++
	if s.advanceErr != nil {
		return false, s.advanceErr
	}
	order, ok := s.orders[id]
	if !ok || order.Status != from {
		return false, nil
	}
	order.Status = to
	s.orders[id] = order
	return true, nil
}

func (s *fakeOrderStorage) DeleteOrder(_ context.Context, id int64) error {
	if _, ok := s.orders[id]; !ok {
		return models.ErrNotFound
	}
	delete(s.orders, id)
	return nil
}

type fakeNotifier struct {
	orders []models.Order
}

func (n *fakeNotifier) NotifyNewOrder(order models.Order) {
	n.orders = append(n.orders, order)
}

func strPtr(s string) *string { return &s }

func TestOrderServiceCreateOrder(t *testing.T) {
	testCases := []struct {
		testName       string
		inquiry        models.Inquiry
		expectedErr    error
		expectedNotify int
	}{
		{
			testName:       "Should create order and notify operator",
			inquiry:        models.Inquiry{CustomerName: strPtr("Анна"), CustomerPhone: strPtr("+7 900"), PhoneModel: "Redmi"},
			expectedNotify: 1,
		},
		{
			testName:    "Should require customer name",
			inquiry:     models.Inquiry{CustomerPhone: strPtr("+7 900")},
			expectedErr: models.ErrInvalidInput,
		},
		{
			testName:    "Should require customer phone",
			inquiry:     models.Inquiry{CustomerName: strPtr("Анна"), CustomerPhone: strPtr("")},
			expectedErr: models.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			notifier := &fakeNotifier{}
			service := NewOrderService(newFakeOrderStorage(), notifier)

			id, err := service.CreateOrder(context.Background(), tc.inquiry)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Zero(t, id)
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(101), id)
			}
			require.Len(t, notifier.orders, tc.expectedNotify)
			if tc.expectedNotify > 0 {
				assert.Equal(t, id, notifier.orders[0].ID)
			}
		})
	}
}

func TestOrderServiceCreateOrderWithoutNotifier(t *testing.T) {
	service := NewOrderService(newFakeOrderStorage(), nil)

	_, err := service.CreateOrder(context.Background(), models.Inquiry{CustomerName: strPtr("a"), CustomerPhone: strPtr("b")})

	assert.NoError(t, err)
}

func TestOrderServiceUpdateOrderStatus(t *testing.T) {
	testCases := []struct {
		testName         string
		current          models.OrderStatus
		target           models.OrderStatus
		advanceErr       error
		expectedErr      error
		expectedStatus   models.OrderStatus
		expectedAdvanced int
	}{
		{testName: "Should move new to in_progress", current: models.StatusNew, target: models.StatusInProgress, expectedStatus: models.StatusInProgress, expectedAdvanced: 1},
		{testName: "Should move in_progress to completed", current: models.StatusInProgress, target: models.StatusCompleted, expectedStatus: models.StatusCompleted, expectedAdvanced: 1},
		{testName: "Should accept the same status", current: models.StatusInProgress, target: models.StatusInProgress, expectedStatus: models.StatusInProgress},
		{testName: "Should reject skipping a step", current: models.StatusNew, target: models.StatusCompleted, expectedErr: models.ErrInvalidStatusTransition, expectedStatus: models.StatusNew},
		{testName: "Should reject regress", current: models.StatusCompleted, target: models.StatusNew, expectedErr: models.ErrInvalidStatusTransition, expectedStatus: models.StatusCompleted},
		{testName: "Should reject unknown status", current: models.StatusNew, target: "done", expectedErr: models.ErrInvalidInput, expectedStatus: models.StatusNew},
		{testName: "Should pass storage error", current: models.StatusNew, target: models.StatusInProgress, advanceErr: errors.New("db is down"), expectedStatus: models.StatusNew, expectedAdvanced: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			storage := newFakeOrderStorage(models.Order{ID: 1, Status: tc.current})
			storage.advanceErr = tc.advanceErr
			service := NewOrderService(storage, nil)

			err := service.UpdateOrderStatus(context.Background(), 1, tc.target)

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.advanceErr != nil:
				assert.ErrorIs(t, err, tc.advanceErr)
			default:
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.expectedStatus, storage.orders[1].Status)
			assert.Equal(t, tc.expectedAdvanced, storage.advanced)
		})
	}
}

func TestOrderServiceUpdateMissingOrder(t *testing.T) {
	service := NewOrderService(newFakeOrderStorage(), nil)

	err := service.UpdateOrderStatus(context.Background(), 5, models.StatusInProgress)

	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestOrderServiceDeleteOrder(t *testing.T) {
	storage := newFakeOrderStorage(models.Order{ID: 1})
	service := NewOrderService(storage, nil)

	require.NoError(t, service.DeleteOrder(context.Background(), 1))
	assert.ErrorIs(t, service.DeleteOrder(context.Background(), 1), models.ErrNotFound)
}
