package resume

import (
	"context"
	"time"

	"hrservice/internal/domain/position"
)

// PositionLookup resolves live positions a resume may be attached to.
type PositionLookup interface {
	GetByID(ctx context.Context, id string) (position.Position, error)
}

type Repository interface {
	Create(ctx context.Context, r Resume) (Resume, error)
	GetByID(ctx context.Context, id string) (Resume, error)
	List(ctx context.Context, f Filter) ([]Resume, int, error)
	Update(ctx context.Context, id string, p Patch) (Resume, error)
	SoftDelete(ctx context.Context, id string) (Resume, error)
	UpdateStatus(ctx context.Context, id string, status Status, at time.Time) (Resume, error)
	SetFile(ctx context.Context, id, path string) (Resume, error)

	AddComment(ctx context.Context, c Comment) (Comment, error)
	ListComments(ctx context.Context, resumeID string) ([]Comment, error)
	AddCallHistory(ctx context.Context, h CallHistory) (CallHistory, error)

	// Derived state, written by subscribers only.
	SetProcessingDuration(ctx context.Context, id string, d time.Duration) error
	MarkEventProcessed(ctx context.Context, eventID, resumeID string) (bool, error)
	IncrementSummary(ctx context.Context, id string, c Counter) error
}
