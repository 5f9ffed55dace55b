package core

import (
	"container/heap"
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type task struct {
	hash   string
	fireAt time.Time
	seq    uint64
}

// taskQueue is a min-heap on fire time; seq breaks ties in scheduling order.
type taskQueue []task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].fireAt.Equal(q[j].fireAt) {
		return q[i].seq < q[j].seq
	}
	return q[i].fireAt.Before(q[j].fireAt)
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) { *q = append(*q, x.(task)) }

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	*q = old[:n-1]
	return t
}

// Scheduler is a delay queue drained by a single worker goroutine. Tasks are
// never cancelled; stopping the worker leaves queued hashes pending in the
// store.
type Scheduler struct {
	logs *zap.SugaredLogger
	now  func() time.Time

	mu    sync.Mutex
	queue taskQueue
	seq   uint64

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
}

func NewScheduler(logger *zap.SugaredLogger) *Scheduler {
	return &Scheduler{
		logs: logger,
		now:  time.Now,
		wake: make(chan struct{}, 1),
		stop: make(chan struct{}),
	}
}

// Schedule queues hash for confirmation after delay. It never blocks.
func (s *Scheduler) Schedule(hash string, delay time.Duration) {
	s.mu.Lock()
	s.seq++
	heap.Push(&s.queue, task{hash: hash, fireAt: s.now().Add(delay), seq: s.seq})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Len returns the number of queued tasks.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Run fires due tasks against c until ctx is cancelled or Stop is called.
func (s *Scheduler) Run(ctx context.Context, c Confirmer) {
	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	s.logs.Infow("confirmation scheduler started")
	defer s.logs.Infow("confirmation scheduler stopped", "queued", s.Len())

	for {
		for _, hash := range s.due() {
			if _, err := c.ConfirmNow(ctx, hash); err != nil {
				s.logs.Errorw("scheduled confirmation failed", "hash", hash, "error", err)
			}
		}

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.untilNext())

		select {
		case <-ctx.Done():
			return
		case <-s.stop:
			return
		case <-s.wake:
		case <-timer.C:
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Scheduler) due() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var hashes []string
	for s.queue.Len() > 0 && !s.queue[0].fireAt.After(now) {
		hashes = append(hashes, heap.Pop(&s.queue).(task).hash)
	}
	return hashes
}

func (s *Scheduler) untilNext() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.queue.Len() == 0 {
		return time.Hour
	}
	if d := s.queue[0].fireAt.Sub(s.now()); d > 0 {
		return d
	}
	return 0
}
