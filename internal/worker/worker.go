package worker

import (
	"context"
	"errors"
	"sync"
)

// ErrStopped is returned by Submit once the pool has been stopped.
var ErrStopped = errors.New("worker: pool stopped")

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs tasks off the caller's goroutine, e.g. search requests issued from
// a live session loop.
type Pool interface {
	Submit(ctx context.Context, t Task) error
	Stop()
}

// NewPool creates a pool with n workers and a queue of n*4 pending tasks.
// n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*4), done: make(chan struct{})}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	done chan struct{}
	mu   sync.RWMutex
	once sync.Once
	wg   sync.WaitGroup
}

// Submit queues t, blocking while the queue is full until ctx is done.
func (p *pool) Submit(ctx context.Context, t Task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	select {
	case <-p.done:
		return ErrStopped
	default:
	}
	select {
	case p.jobs <- t:
		return nil
	case <-p.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop drains queued tasks and waits for the workers. Safe to call twice.
func (p *pool) Stop() {
	p.once.Do(func() {
		close(p.done)
		p.mu.Lock()
		close(p.jobs)
		p.mu.Unlock()
	})
	p.wg.Wait()
}

// Inline runs every task on the caller's goroutine.
type Inline struct{}

func (Inline) Submit(_ context.Context, t Task) error {
	if t != nil {
		t()
	}
	return nil
}

func (Inline) Stop() {}
