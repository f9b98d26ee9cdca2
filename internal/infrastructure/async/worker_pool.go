package async

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Task func(ctx context.Context)

// WorkerPool runs tasks from a bounded queue on a fixed set of goroutines.
type WorkerPool struct {
	tasks       chan Task
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	log         *zap.Logger
	taskTimeout time.Duration

	mu     sync.RWMutex
	closed bool
}

func NewWorkerPool(parent context.Context, size, queueSize int, taskTimeout time.Duration, log *zap.Logger) *WorkerPool {
	if size < 1 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	ctx, cancel := context.WithCancel(parent)
	p := &WorkerPool{
		tasks:       make(chan Task, queueSize),
		ctx:         ctx,
		cancel:      cancel,
		log:         log,
		taskTimeout: taskTimeout,
	}

	for i := 0; i < size; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		if p.ctx.Err() != nil {
			p.log.Warn("task skipped, pool cancelled", zap.Int("worker", id))
			continue
		}

		taskCtx, cancel := p.taskContext()
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.log.Error("task panicked", zap.Int("worker", id), zap.Any("panic", r))
				}
			}()
			task(taskCtx)
		}()
		cancel()
	}
}

func (p *WorkerPool) taskContext() (context.Context, context.CancelFunc) {
	if p.taskTimeout > 0 {
		return context.WithTimeout(p.ctx, p.taskTimeout)
	}
	return context.WithCancel(p.ctx)
}

// TrySubmit enqueues task without blocking. It reports false when the queue
// is full or the pool is shut down.
func (p *WorkerPool) TrySubmit(task Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false
	}
	select {
	case p.tasks <- task:
		return true
	default:
		return false
	}
}

// Shutdown stops accepting tasks and waits for queued ones to finish.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
	p.cancel()
}
