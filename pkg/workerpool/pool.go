// Package workerpool provides a bounded goroutine pool with backpressure.
//
// A Pool limits the number of goroutines that can run concurrently, which
// prevents unbounded goroutine creation under bursty load. When all workers
// are busy and the queue is full, Submit returns ErrPoolFull immediately so
// the caller can decide to drop, retry, or reject.
package workerpool

import (
	"errors"
	"sync"

	"github.com/shashiranjanraj/foodcourt/pkg/logger"
)

// ErrPoolFull is returned by Submit when all workers are busy and the task
// queue is at capacity.
var ErrPoolFull = errors.New("workerpool: pool is full")

// ErrPoolClosed is returned by Submit after Shutdown has been called.
var ErrPoolClosed = errors.New("workerpool: pool is closed")

// Pool is a bounded goroutine pool.
type Pool struct {
	tasks   chan func()
	wg      sync.WaitGroup
	once    sync.Once
	closeCh chan struct{}
}

// New creates a Pool with the given number of workers.
func New(size int) *Pool {
	if size <= 0 {
		size = 1
	}

	p := &Pool{
		// Buffer equal to 2× the worker count so bursts can be absorbed.
		tasks:   make(chan func(), size*2),
		closeCh: make(chan struct{}),
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

// Submit enqueues task for execution. It never blocks.
//   - Returns ErrPoolFull if the task queue is at capacity.
//   - Returns ErrPoolClosed if Shutdown has been called.
func (p *Pool) Submit(task func()) error {
	select {
	case <-p.closeCh:
		return ErrPoolClosed
	default:
	}

	select {
	case p.tasks <- task:
		return nil
	default:
		return ErrPoolFull
	}
}

// SubmitWait enqueues task, blocking until a queue slot is free.
// Returns ErrPoolClosed if the pool has been shut down.
func (p *Pool) SubmitWait(task func()) error {
	select {
	case <-p.closeCh:
		return ErrPoolClosed
	case p.tasks <- task:
		return nil
	}
}

// Shutdown stops accepting tasks, drains the queue, and waits for all
// workers to finish. Safe to call multiple times.
func (p *Pool) Shutdown() {
	p.once.Do(func() {
		close(p.closeCh)
		close(p.tasks)
	})
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(task)
	}
}

// run executes one task, recovering from panics so a bad task never kills
// the worker.
func (p *Pool) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("workerpool: task panic recovered", "panic", r)
		}
	}()
	task()
}
