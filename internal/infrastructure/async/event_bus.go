package async

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"hrservice/internal/domain"
)

type AsyncOptions struct {
	Workers      int
	QueueSize    int
	MaxRetries   uint64
	RetryBackoff time.Duration
	TaskTimeout  time.Duration
}

// AsyncEventBus defers dispatch to a worker pool. Publish returns as soon as
// the event is queued; a full queue drops the event.
type AsyncEventBus struct {
	reg      *Registry
	pool     *WorkerPool
	log      *zap.Logger
	failures *FailureCounter
	opts     AsyncOptions
}

var _ domain.EventBus = (*AsyncEventBus)(nil)

func NewAsyncEventBus(ctx context.Context, reg *Registry, opts AsyncOptions, log *zap.Logger, failures *FailureCounter) *AsyncEventBus {
	if opts.RetryBackoff <= 0 {
		opts.RetryBackoff = 100 * time.Millisecond
	}
	return &AsyncEventBus{
		reg:      reg,
		pool:     NewWorkerPool(ctx, opts.Workers, opts.QueueSize, opts.TaskTimeout, log),
		log:      log,
		failures: failures,
		opts:     opts,
	}
}

func (b *AsyncEventBus) Publish(_ context.Context, e domain.Event) error {
	handlers, err := b.reg.Handlers(e.Name)
	if err != nil {
		return err
	}
	if len(handlers) == 0 {
		return nil
	}

	ok := b.pool.TrySubmit(func(ctx context.Context) {
		reportDispatch(b.log, e, dispatch(ctx, b.log, b.failures, handlers, e, b.attempt(e)))
	})
	if !ok {
		b.log.Warn("event dropped, dispatch queue full",
			zap.String("event", string(e.Name)),
			zap.String("event_id", e.ID),
		)
	}
	return nil
}

// attempt retries a failing handler with constant backoff. Handlers must be
// idempotent on the event ID.
func (b *AsyncEventBus) attempt(e domain.Event) func(ctx context.Context, idx int, h domain.EventHandler) error {
	return func(ctx context.Context, idx int, h domain.EventHandler) error {
		backoff := retry.WithMaxRetries(b.opts.MaxRetries, retry.NewConstant(b.opts.RetryBackoff))
		try := 0
		return retry.Do(ctx, backoff, func(ctx context.Context) error {
			try++
			if err := runHandler(ctx, h, e); err != nil {
				if try <= int(b.opts.MaxRetries) {
					b.log.Debug("event handler retry",
						zap.String("event", string(e.Name)),
						zap.String("event_id", e.ID),
						zap.Int("handler", idx),
						zap.Int("attempt", try),
						zap.Error(err),
					)
				}
				return retry.RetryableError(err)
			}
			return nil
		})
	}
}

// Close waits for queued events to be dispatched.
func (b *AsyncEventBus) Close() {
	b.pool.Shutdown()
}
