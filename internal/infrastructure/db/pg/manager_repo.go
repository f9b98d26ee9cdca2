package pg

import (
	"context"
	"database/sql"

	"hrservice/internal/domain/manager"
)

type ManagerRepository struct {
	db *sql.DB
}

func NewManagerRepository(db *sql.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) Create(ctx context.Context, m manager.Manager) (manager.Manager, error) {
	var createdAt sql.NullTime
	err := queryRow(ctx, r.db,
		`INSERT INTO managers (manager_id, entity, entity_id, user_id, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		m.ID, string(m.Entity), m.EntityID, m.UserID, m.CreatedBy,
	).Scan(&createdAt)
	if err != nil {
		return manager.Manager{}, uniqueError(refError(err, "user does not exist"), "user is already a manager")
	}
	m.CreatedAt = timePtr(createdAt)
	return m, nil
}

func (r *ManagerRepository) Exists(ctx context.Context, entity manager.Entity, entityID, userID string) (bool, error) {
	var exists bool
	err := queryRow(ctx, r.db,
		`SELECT EXISTS(
			SELECT 1 FROM managers WHERE entity = $1 AND entity_id = $2 AND user_id = $3
		)`,
		string(entity), entityID, userID,
	).Scan(&exists)
	return exists, err
}
