package stats

import "context"

type Service interface {
	GetStatusStats(ctx context.Context, positionID *string) ([]StatusStat, error)
	GetPositionStats(ctx context.Context) ([]PositionStat, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetStatusStats(ctx context.Context, positionID *string) ([]StatusStat, error) {
	return s.repo.GetStatusStats(ctx, positionID)
}

func (s *service) GetPositionStats(ctx context.Context) ([]PositionStat, error) {
	return s.repo.GetPositionStats(ctx)
}
