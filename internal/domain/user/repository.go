package user

import "context"

type Repository interface {
	List(ctx context.Context, f Filter) ([]User, int, error)
	GetByID(ctx context.Context, id string) (User, error)
}
