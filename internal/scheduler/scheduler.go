package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/WheelOfFortune_Go/internal/logger"
	"github.com/osse101/WheelOfFortune_Go/internal/worker"
)

// Scheduler runs delayed one-shot tasks on a worker pool.
// Timers only enqueue; the task itself runs on a pool worker.
type Scheduler struct {
	workerPool *worker.Pool

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	stopped bool
	wg      sync.WaitGroup
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		timers:     make(map[uuid.UUID]*time.Timer),
	}
}

// After schedules job to run once after delay and returns its task id.
// After Shutdown it returns uuid.Nil and the job never runs.
func (s *Scheduler) After(delay time.Duration, name string, job worker.Job) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		logger.Warn(LogMsgScheduleAfterShutdown, "task", name)
		return uuid.Nil
	}

	id := uuid.New()
	s.timers[id] = time.AfterFunc(delay, func() {
		s.fire(id, name, job)
	})
	logger.Debug(LogMsgTaskScheduled, "task", name, "task_id", id, "delay", delay)
	return id
}

func (s *Scheduler) fire(id uuid.UUID, name string, job worker.Job) {
	s.mu.Lock()
	if _, ok := s.timers[id]; !ok || s.stopped {
		s.mu.Unlock()
		return
	}
	delete(s.timers, id)
	s.wg.Add(1)
	s.mu.Unlock()

	wrapped := worker.JobFunc(func(ctx context.Context) error {
		defer s.wg.Done()
		logger.Debug(LogMsgTaskRunning, "task", name, "task_id", id)
		return job.Process(ctx)
	})
	if !s.workerPool.Enqueue(wrapped) {
		s.wg.Done()
		logger.Warn(LogMsgPoolStopped, "task", name, "task_id", id)
	}
}

// Cancel stops a pending task. It reports false if the task already fired or never existed.
func (s *Scheduler) Cancel(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[id]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, id)
	return true
}

// Pending returns the number of tasks waiting for their timer
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Shutdown cancels every pending task and waits for tasks already handed to the pool
func (s *Scheduler) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	s.stopped = true
	for id, timer := range s.timers {
		timer.Stop()
		log.Debug(LogMsgTaskCancelled, "task_id", id)
	}
	s.timers = make(map[uuid.UUID]*time.Timer)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
