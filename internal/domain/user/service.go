package user

import (
	"context"
	"strings"

	"hrservice/internal/domain"
)

type Service interface {
	List(ctx context.Context, f Filter) (domain.Page[User], error)
	Get(ctx context.Context, id string) (User, error)
}

type service struct {
	users Repository
}

func NewService(users Repository) Service {
	return &service{users: users}
}

// List matches Query against first and last name.
func (s *service) List(ctx context.Context, f Filter) (domain.Page[User], error) {
	f = f.Normalize()
	f.Query = strings.TrimSpace(f.Query)
	items, total, err := s.users.List(ctx, f)
	if err != nil {
		return domain.Page[User]{}, err
	}
	return domain.Page[User]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

func (s *service) Get(ctx context.Context, id string) (User, error) {
	return s.users.GetByID(ctx, id)
}
