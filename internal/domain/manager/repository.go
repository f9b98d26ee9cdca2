package manager

import (
	"context"

	"hrservice/internal/domain/user"
)

type Repository interface {
	Create(ctx context.Context, m Manager) (Manager, error)
	Exists(ctx context.Context, entity Entity, entityID, userID string) (bool, error)
}

// UserLookup resolves the user being made a manager.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (user.User, error)
}
