package async

import (
	"context"

	"go.uber.org/zap"

	"hrservice/internal/domain"
)

// InlineEventBus runs handlers synchronously inside Publish.
type InlineEventBus struct {
	reg      *Registry
	log      *zap.Logger
	failures *FailureCounter
}

var _ domain.EventBus = (*InlineEventBus)(nil)

func NewInlineEventBus(reg *Registry, log *zap.Logger, failures *FailureCounter) *InlineEventBus {
	return &InlineEventBus{reg: reg, log: log, failures: failures}
}

func (b *InlineEventBus) Publish(ctx context.Context, e domain.Event) error {
	handlers, err := b.reg.Handlers(e.Name)
	if err != nil {
		return err
	}
	if len(handlers) == 0 {
		return nil
	}

	// the response is already decided; a client disconnect must not cut
	// derived-state work short
	hctx := context.WithoutCancel(ctx)
	err = dispatch(hctx, b.log, b.failures, handlers, e,
		func(ctx context.Context, _ int, h domain.EventHandler) error {
			return runHandler(ctx, h, e)
		},
	)
	reportDispatch(b.log, e, err)
	return nil
}

func (b *InlineEventBus) Close() {}
