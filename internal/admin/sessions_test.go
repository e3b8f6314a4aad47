package admin

import (
	"context"
	"testing"
	"time"

	"github.com/Renal37/valerius-unlock/internal/models"
	mock_models "github.com/Renal37/valerius-unlock/internal/models/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleLoginLoadsFreshStore(t *testing.T) {
	console := NewConsole(DefaultVerifier(), NewMockSource(), DefaultPolicy())

	assert.False(t, console.IsAuthenticated())
	assert.ErrorIs(t, console.Orchestrator().DeleteOrder(context.Background(), 1), ErrSessionClosed)

	require.NoError(t, console.Login(context.Background(), credentials("admin", "admin")))
	assert.True(t, console.IsAuthenticated())

	first := console.Store()
	assert.Len(t, first.Services(), 6)
	assert.Len(t, first.Orders(), 3)
	assert.Len(t, first.Videos(), len(Portfolio()))

	require.NoError(t, console.Login(context.Background(), credentials("admin", "admin")))
	assert.NotSame(t, first, console.Store())
	assert.True(t, first.Discarded())
}

func TestConsoleRejectedLoginKeepsStoreClosed(t *testing.T) {
	console := NewConsole(DefaultVerifier(), NewMockSource(), DefaultPolicy())

	err := console.Login(context.Background(), credentials("admin", "wrong"))

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, console.IsAuthenticated())
	assert.True(t, console.Store().Discarded())
	assert.ErrorIs(t, console.Reload(context.Background()), ErrSessionClosed)
}

func TestConsoleLoadFailureKeepsAdmission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mock_models.NewMockDataSource(ctrl)
	source.EXPECT().ListServices(gomock.Any()).Return(nil, errRemote).AnyTimes()
	source.EXPECT().ListOrders(gomock.Any()).Return(nil, nil).AnyTimes()
	source.EXPECT().ListReviews(gomock.Any()).Return(nil, nil).AnyTimes()

	console := NewConsole(DefaultVerifier(), source, DefaultPolicy())
	err := console.Login(context.Background(), credentials("admin", "admin"))

	assert.ErrorIs(t, err, ErrLoadFailed)
	assert.True(t, console.IsAuthenticated())
	assert.Empty(t, console.Store().Orders())
	assert.Empty(t, console.Store().Videos())
}

func TestConsoleLogoutDiscardsStore(t *testing.T) {
	console := NewConsole(DefaultVerifier(), NewMockSource(), DefaultPolicy())
	require.NoError(t, console.Login(context.Background(), credentials("admin", "admin")))

	store := console.Store()
	console.Logout()

	assert.False(t, console.IsAuthenticated())
	assert.True(t, store.Discarded())
	assert.ErrorIs(t, console.Orchestrator().DeleteReview(context.Background(), 1), ErrSessionClosed)
}

func TestSessions(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sessions := NewSessions(DefaultVerifier(), NewMockSource(), DefaultPolicy(), time.Hour)
	sessions.now = func() time.Time { return now }

	t.Run("Should not open session for rejected credentials", func(t *testing.T) {
		id, console, err := sessions.Login(context.Background(), credentials("admin", "nope"))

		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, id)
		assert.Nil(t, console)
		assert.Equal(t, 0, sessions.Len())
	})

	id, console, err := sessions.Login(context.Background(), credentials("admin", "admin"))
	require.NoError(t, err)
	require.NotEmpty(t, id)

	t.Run("Should return open session", func(t *testing.T) {
		got, ok := sessions.Get(id)
		require.True(t, ok)
		assert.Same(t, console, got)
	})

	t.Run("Should isolate sessions", func(t *testing.T) {
		otherID, other, err := sessions.Login(context.Background(), credentials("admin", "admin"))
		require.NoError(t, err)
		assert.NotEqual(t, id, otherID)

		require.NoError(t, other.Store().RemoveOrder(1))
		assert.Len(t, console.Store().Orders(), 3)

		assert.True(t, sessions.Logout(otherID))
		assert.False(t, sessions.Logout(otherID))
	})

	t.Run("Should expire session after ttl", func(t *testing.T) {
		now = now.Add(time.Hour)

		_, ok := sessions.Get(id)
		assert.False(t, ok)
		assert.False(t, console.IsAuthenticated())
		assert.Equal(t, 0, sessions.Len())
	})
}

func TestSessionsPruneExpiredOnLogin(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sessions := NewSessions(DefaultVerifier(), NewMockSource(), DefaultPolicy(), time.Minute)
	sessions.now = func() time.Time { return now }

	_, first, err := sessions.Login(context.Background(), credentials("admin", "admin"))
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	_, _, err = sessions.Login(context.Background(), credentials("admin", "admin"))
	require.NoError(t, err)

	assert.Equal(t, 1, sessions.Len())
	assert.True(t, first.Store().Discarded())
}

func TestMockSource(t *testing.T) {
	ctx := context.Background()
	source := NewMockSource()

	t.Run("Should assign sequential ids", func(t *testing.T) {
		first, err := source.CreateService(ctx, models.Service{Title: "a", Price: 1})
		require.NoError(t, err)
		second, err := source.CreateService(ctx, models.Service{Title: "b", Price: 1})
		require.NoError(t, err)

		assert.Equal(t, first+1, second)
	})

	t.Run("Should validate services", func(t *testing.T) {
		_, err := source.CreateService(ctx, models.Service{Title: "a"})
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("Should report unknown ids", func(t *testing.T) {
		assert.ErrorIs(t, source.DeleteOrder(ctx, 999), models.ErrNotFound)
		assert.ErrorIs(t, source.DeleteReview(ctx, 999), models.ErrNotFound)
		assert.ErrorIs(t, source.DeleteService(ctx, 999), models.ErrNotFound)
		assert.ErrorIs(t, source.SetReviewPublished(ctx, 999, true), models.ErrNotFound)
		assert.ErrorIs(t, source.UpdateOrderStatus(ctx, 999, models.StatusInProgress), models.ErrNotFound)
		assert.ErrorIs(t, source.UpdateService(ctx, models.Service{ID: 999, Title: "x", Price: 1}), models.ErrNotFound)
	})

	t.Run("Should move orders forward only", func(t *testing.T) {
		assert.NoError(t, source.UpdateOrderStatus(ctx, 3, models.StatusInProgress))
		assert.NoError(t, source.UpdateOrderStatus(ctx, 3, models.StatusInProgress))
		assert.ErrorIs(t, source.UpdateOrderStatus(ctx, 3, models.StatusNew), models.ErrInvalidStatusTransition)
	})

	t.Run("Should return copies", func(t *testing.T) {
		orders, err := source.ListOrders(ctx)
		require.NoError(t, err)
		orders[0].CustomerName = "changed"

		again, err := source.ListOrders(ctx)
		require.NoError(t, err)
		assert.NotEqual(t, "changed", again[0].CustomerName)
	})
}
