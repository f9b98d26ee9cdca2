package manager

import (
	"context"

	"github.com/google/uuid"

	"hrservice/internal/domain"
)

// Assigner attaches users to companies and positions as managers. Callers
// check that the entity exists and run Assign inside their transaction.
type Assigner struct {
	users    UserLookup
	managers Repository
}

func NewAssigner(users UserLookup, managers Repository) *Assigner {
	return &Assigner{users: users, managers: managers}
}

func (a *Assigner) Assign(ctx context.Context, entity Entity, entityID, userID, actor string) (Manager, error) {
	if userID == "" {
		return Manager{}, domain.BadRequest("manager_id is required")
	}

	u, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return Manager{}, err
	}
	if u.IsBanned {
		return Manager{}, domain.BadRequest("banned user cannot be a manager")
	}

	exists, err := a.managers.Exists(ctx, entity, entityID, userID)
	if err != nil {
		return Manager{}, err
	}
	if exists {
		return Manager{}, domain.Conflict("user is already a manager")
	}

	return a.managers.Create(ctx, Manager{
		ID:        uuid.NewString(),
		Entity:    entity,
		EntityID:  entityID,
		UserID:    userID,
		CreatedBy: actor,
	})
}
