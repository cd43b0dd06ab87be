package worker

import (
	"log/slog"
	"sync"
)

// Task represents a unit of work executed by the pool.
type Task func()

// Pool defines a simple worker pool.
type Pool interface {
	// Submit queues t and reports whether it was accepted. It returns false
	// once the pool is stopped or when the queue is full.
	Submit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and a queue of the given size.
// n<=0 defaults to 1, queue<0 defaults to 0 (unbuffered: Submit only
// succeeds when a worker is idle).
func NewPool(n, queue int, logger *slog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &pool{jobs: make(chan Task, queue), logger: logger}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(job)
			}
		}()
	}
	return p
}

type pool struct {
	mu      sync.RWMutex
	stopped bool
	jobs    chan Task
	wg      sync.WaitGroup
	logger  *slog.Logger
}

func (p *pool) run(job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("worker task panicked", slog.Any("panic", r))
		}
	}()
	job()
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	// 佇列滿了直接丟棄，不讓呼叫端卡住
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop rejects new tasks and waits for queued ones to finish.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
