package async

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"hrservice/internal/domain"
)

// FailureCounter counts handler failures across the process.
type FailureCounter struct {
	n atomic.Int64
}

func (c *FailureCounter) Inc() {
	if c != nil {
		c.n.Add(1)
	}
}

func (c *FailureCounter) Load() int64 {
	if c == nil {
		return 0
	}
	return c.n.Load()
}

// runHandler invokes h and turns a panic into an error.
func runHandler(ctx context.Context, h domain.EventHandler, e domain.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h(ctx, e)
}

// dispatch runs every handler in order. A failing handler never stops the
// loop; failures are logged, counted and combined into the returned error.
func dispatch(
	ctx context.Context,
	log *zap.Logger,
	failures *FailureCounter,
	handlers []domain.EventHandler,
	e domain.Event,
	attempt func(ctx context.Context, idx int, h domain.EventHandler) error,
) error {
	var errs error
	for i, h := range handlers {
		if err := attempt(ctx, i, h); err != nil {
			failures.Inc()
			log.Error("event handler failed",
				zap.String("event", string(e.Name)),
				zap.String("event_id", e.ID),
				zap.Int("handler", i),
				zap.Error(err),
			)
			errs = multierr.Append(errs, fmt.Errorf("handler %d: %w", i, err))
		}
	}
	return errs
}

// reportDispatch writes one summary line for an event whose handlers did not
// all succeed.
func reportDispatch(log *zap.Logger, e domain.Event, err error) {
	if err == nil {
		return
	}
	log.Error("event dispatch incomplete",
		zap.String("event", string(e.Name)),
		zap.String("event_id", e.ID),
		zap.Int("failed_handlers", len(multierr.Errors(err))),
		zap.Error(err),
	)
}
