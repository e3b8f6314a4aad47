package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Renal37/valerius-unlock/internal/logger"
	"go.uber.org/zap"
)

var (
	ErrJobQueueIsFull = errors.New("очередь заданий заполнена")
	ErrJobQueueClosed = errors.New("очередь заданий закрыта")
)

// Job задание, выполняемое воркером очереди.
type Job func(ctx context.Context)

// JobQueueService очередь заданий с фиксированным числом воркеров.
// Очередь можно приостановить, например, когда внешний API просит подождать.
type JobQueueService struct {
	jobs chan Job
	wg   sync.WaitGroup

	mu     sync.Mutex // защищает paused и resume
	paused bool
	resume chan struct{}

	closeMu sync.RWMutex // защищает closed и запись в jobs
	closed  bool
}

// NewJobQueueService создает очередь емкостью capacity и запускает workers воркеров.
// Воркеры завершаются при отмене ctx или после Shutdown.
func NewJobQueueService(ctx context.Context, capacity, workers int) *JobQueueService {
	service := &JobQueueService{
		jobs:   make(chan Job, capacity),
		resume: make(chan struct{}),
	}
	service.start(ctx, workers)

	return service
}

func (jqs *JobQueueService) start(ctx context.Context, workers int) {
	for i := 0; i < workers; i++ {
		jqs.wg.Add(1)

		go func() {
			defer jqs.wg.Done()

			for {
				select {
				case job, ok := <-jqs.jobs:
					if !ok {
						return
					}

					if !jqs.waitResume(ctx) {
						return
					}

					job(ctx)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
}

// waitResume блокирует воркер, пока очередь на паузе. false означает отмену контекста.
func (jqs *JobQueueService) waitResume(ctx context.Context) bool {
	jqs.mu.Lock()
	paused, resume := jqs.paused, jqs.resume
	jqs.mu.Unlock()

	if !paused {
		return true
	}

	select {
	case <-resume:
		return true
	case <-ctx.Done():
		return false
	}
}

// Enqueue добавляет задание. Не блокирует: при заполненной очереди возвращает ErrJobQueueIsFull.
func (jqs *JobQueueService) Enqueue(job Job) error {
	jqs.closeMu.RLock()
	defer jqs.closeMu.RUnlock()

	if jqs.closed {
		return ErrJobQueueClosed
	}

	select {
	case jqs.jobs <- job:
		return nil
	default:
		return ErrJobQueueIsFull
	}
}

// ScheduleJob ставит задание в очередь через delay.
func (jqs *JobQueueService) ScheduleJob(job Job, delay time.Duration) {
	time.AfterFunc(delay, func() {
		if err := jqs.Enqueue(job); err != nil {
			logger.Log.Warn("failed to schedule job", zap.Error(err))
		}
	})
}

func (jqs *JobQueueService) Pause() {
	jqs.mu.Lock()
	defer jqs.mu.Unlock()

	jqs.paused = true
}

func (jqs *JobQueueService) Resume() {
	jqs.mu.Lock()
	defer jqs.mu.Unlock()

	if !jqs.paused {
		return
	}

	jqs.paused = false
	close(jqs.resume)
	jqs.resume = make(chan struct{})
}

// PauseAndResume приостанавливает очередь на delay.
func (jqs *JobQueueService) PauseAndResume(delay time.Duration) {
	jqs.Pause()
	time.AfterFunc(delay, jqs.Resume)
}

// Shutdown закрывает очередь и ждёт завершения воркеров. Повторный вызов безопасен.
func (jqs *JobQueueService) Shutdown() {
	jqs.closeMu.Lock()
	if jqs.closed {
		jqs.closeMu.Unlock()
		return
	}
	jqs.closed = true
	close(jqs.jobs)
	jqs.closeMu.Unlock()

	jqs.Resume()
	jqs.wg.Wait()
}
