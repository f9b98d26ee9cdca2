package notification

import (
	"context"
	"time"
)

type Repository interface {
	// Create ignores a notification whose SourceEventID was already stored.
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, f Filter) ([]Notification, int, error)
	MarkSent(ctx context.Context, id, response string, at time.Time) (Notification, error)
}
