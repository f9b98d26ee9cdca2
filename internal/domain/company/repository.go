package company

import "context"

type Repository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	List(ctx context.Context, f Filter) ([]Company, int, error)
	Update(ctx context.Context, id string, p Patch) (Company, error)
	SoftDelete(ctx context.Context, id string) error
	NameTaken(ctx context.Context, name, excludeID string) (bool, error)
}
