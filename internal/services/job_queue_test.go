package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobQueueRunsJobs(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 2)
	defer queue.Shutdown()

	var done atomic.Int32
	for i := 0; i < 5; i++ {
		require.NoError(t, queue.Enqueue(func(context.Context) { done.Add(1) }))
	}

	assert.Eventually(t, func() bool { return done.Load() == 5 }, time.Second, 5*time.Millisecond)
}

func TestJobQueueIsFull(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 1, 1)
	defer queue.Shutdown()

	release := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, queue.Enqueue(func(context.Context) {
		close(started)
		<-release
	}))
	<-started

	require.NoError(t, queue.Enqueue(func(context.Context) {}))
	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueIsFull)

	close(release)
}

func TestJobQueuePauseAndResume(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)
	defer queue.Shutdown()

	queue.PauseAndResume(100 * time.Millisecond)

	var done atomic.Bool
	require.NoError(t, queue.Enqueue(func(context.Context) { done.Store(true) }))

	time.Sleep(30 * time.Millisecond)
	assert.False(t, done.Load())

	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueScheduleJob(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 1)
	defer queue.Shutdown()

	var done atomic.Bool
	queue.ScheduleJob(func(context.Context) { done.Store(true) }, 30*time.Millisecond)

	assert.False(t, done.Load())
	assert.Eventually(t, done.Load, time.Second, 5*time.Millisecond)
}

func TestJobQueueShutdown(t *testing.T) {
	queue := NewJobQueueService(context.Background(), 10, 2)
	queue.Pause()

	var done atomic.Int32
	for i := 0; i < 3; i++ {
		require.NoError(t, queue.Enqueue(func(context.Context) { done.Add(1) }))
	}

	queue.Shutdown()
	queue.Shutdown()

	assert.Equal(t, int32(3), done.Load())
	assert.ErrorIs(t, queue.Enqueue(func(context.Context) {}), ErrJobQueueClosed)
}

func TestJobQueueStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	queue := NewJobQueueService(ctx, 10, 1)
	queue.Pause()

	var done atomic.Bool
	require.NoError(t, queue.Enqueue(func(context.Context) { done.Store(true) }))

	cancel()
	queue.wg.Wait()

	assert.False(t, done.Load())
}
