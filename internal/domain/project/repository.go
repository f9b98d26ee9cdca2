package project

import "context"

type Repository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	List(ctx context.Context, f Filter) ([]Project, int, error)
	NameTaken(ctx context.Context, companyID, name string) (bool, error)
}
