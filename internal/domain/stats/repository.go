package stats

import "context"

type Repository interface {
	GetStatusStats(ctx context.Context, positionID *string) ([]StatusStat, error)
	GetPositionStats(ctx context.Context) ([]PositionStat, error)
}
