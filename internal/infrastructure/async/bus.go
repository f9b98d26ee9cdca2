package async

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hrservice/internal/domain"
)

type Mode string

const (
	ModeInline   Mode = "inline"
	ModeDeferred Mode = "deferred"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeInline:
		return ModeInline, nil
	case ModeDeferred:
		return ModeDeferred, nil
	}
	return "", fmt.Errorf("unknown dispatch mode %q", s)
}

type Bus interface {
	domain.EventBus
	Close()
}

func NewEventBus(ctx context.Context, mode Mode, reg *Registry, opts AsyncOptions, log *zap.Logger, failures *FailureCounter) (Bus, error) {
	switch mode {
	case ModeInline:
		return NewInlineEventBus(reg, log, failures), nil
	case ModeDeferred:
		return NewAsyncEventBus(ctx, reg, opts, log, failures), nil
	}
	return nil, fmt.Errorf("unknown dispatch mode %q", mode)
}
