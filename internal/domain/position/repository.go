package position

import "context"

type Repository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	List(ctx context.Context, f Filter) ([]Position, int, error)
	Update(ctx context.Context, id string, p Patch) (Position, error)
	SoftDelete(ctx context.Context, id string) error
	TitleTaken(ctx context.Context, companyID, title, excludeID string) (bool, error)
}
