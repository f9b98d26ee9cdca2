package pg

import (
	"context"
	"database/sql"
	"errors"

	"hrservice/internal/domain"
	"hrservice/internal/domain/position"
)

const positionColumns = `position_id, project_id, company_id, title, level, is_active, created_by, created_at, updated_at`

type PositionRepository struct {
	db *sql.DB
}

func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

func positionNotFound() error {
	return domain.NotFound("position not found")
}

func scanPosition(row scanner) (position.Position, error) {
	var (
		p                    position.Position
		level                string
		createdAt, updatedAt sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.ProjectID, &p.CompanyID, &p.Title, &level, &p.IsActive, &p.CreatedBy, &createdAt, &updatedAt); err != nil {
		return position.Position{}, err
	}
	p.Level = position.Level(level)
	p.CreatedAt = timePtr(createdAt)
	p.UpdatedAt = timePtr(updatedAt)
	return p, nil
}

func (r *PositionRepository) one(ctx context.Context, q string, args ...any) (position.Position, error) {
	p, err := scanPosition(queryRow(ctx, r.db, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return position.Position{}, positionNotFound()
	}
	return p, err
}

func (r *PositionRepository) Create(ctx context.Context, p position.Position) (position.Position, error) {
	created, err := r.one(ctx,
		`INSERT INTO positions (position_id, project_id, company_id, title, level, is_active, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+positionColumns,
		p.ID, p.ProjectID, p.CompanyID, p.Title, string(p.Level), p.IsActive, p.CreatedBy,
	)
	return created, uniqueError(refError(err, "company or project does not exist"), "position already exists")
}

func (r *PositionRepository) GetByID(ctx context.Context, id string) (position.Position, error) {
	return r.one(ctx,
		`SELECT `+positionColumns+` FROM positions WHERE position_id = $1 AND deleted_at IS NULL`,
		id,
	)
}

func (r *PositionRepository) List(ctx context.Context, f position.Filter) ([]position.Position, int, error) {
	pattern := likePattern(f.Query)

	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*) FROM positions WHERE deleted_at IS NULL AND title ILIKE $1`,
		pattern,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+positionColumns+`
		   FROM positions
		  WHERE deleted_at IS NULL AND title ILIKE $1
		  ORDER BY created_at DESC, position_id
		  LIMIT $2 OFFSET $3`,
		pattern, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]position.Position, 0, f.Size)
	for rows.Next() {
		p, err := scanPosition(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, p)
	}
	return res, total, rows.Err()
}

func (r *PositionRepository) Update(ctx context.Context, id string, p position.Patch) (position.Position, error) {
	var level *string
	if p.Level != nil {
		v := string(*p.Level)
		level = &v
	}
	updated, err := r.one(ctx,
		`UPDATE positions
		    SET project_id = COALESCE($2, project_id),
		        company_id = COALESCE($3, company_id),
		        title = COALESCE($4, title),
		        level = COALESCE($5, level),
		        is_active = COALESCE($6, is_active),
		        updated_at = NOW()
		  WHERE position_id = $1 AND deleted_at IS NULL
		  RETURNING `+positionColumns,
		id, p.ProjectID, p.CompanyID, p.Title, level, p.IsActive,
	)
	return updated, uniqueError(refError(err, "company or project does not exist"), "position already exists")
}

func (r *PositionRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := exec(ctx, r.db,
		`UPDATE positions SET deleted_at = NOW() WHERE position_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, positionNotFound)
}

// TitleTaken reports whether a live position of the company already uses
// title, ignoring excludeID.
func (r *PositionRepository) TitleTaken(ctx context.Context, companyID, title, excludeID string) (bool, error) {
	var exists bool
	err := queryRow(ctx, r.db,
		`SELECT EXISTS(
			SELECT 1
			  FROM positions
			 WHERE company_id = $1
			   AND lower(title) = lower($2)
			   AND deleted_at IS NULL
			   AND ($3 = '' OR position_id::text <> $3)
		)`,
		companyID, title, excludeID,
	).Scan(&exists)
	return exists, err
}
