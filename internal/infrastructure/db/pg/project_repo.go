package pg

import (
	"context"
	"database/sql"
	"errors"

	"hrservice/internal/domain"
	"hrservice/internal/domain/project"
)

const projectColumns = `project_id, company_id, name, description, created_by, created_at, updated_at`

type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row scanner) (project.Project, error) {
	var (
		p                    project.Project
		createdAt, updatedAt sql.NullTime
	)
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &p.Description, &p.CreatedBy, &createdAt, &updatedAt); err != nil {
		return project.Project{}, err
	}
	p.CreatedAt = timePtr(createdAt)
	p.UpdatedAt = timePtr(updatedAt)
	return p, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	created, err := scanProject(queryRow(ctx, r.db,
		`INSERT INTO projects (project_id, company_id, name, description, created_by)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+projectColumns,
		p.ID, p.CompanyID, p.Name, p.Description, p.CreatedBy,
	))
	if err != nil {
		return project.Project{}, uniqueError(refError(err, "company does not exist"), "project already exists")
	}
	return created, nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	p, err := scanProject(queryRow(ctx, r.db,
		`SELECT `+projectColumns+` FROM projects WHERE project_id = $1 AND deleted_at IS NULL`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return project.Project{}, domain.NotFound("project not found")
	}
	return p, err
}

func (r *ProjectRepository) List(ctx context.Context, f project.Filter) ([]project.Project, int, error) {
	pattern := likePattern(f.Query)

	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*)
		   FROM projects
		  WHERE deleted_at IS NULL AND name ILIKE $1
		    AND ($2 = '' OR company_id::text = $2)`,
		pattern, f.CompanyID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+projectColumns+`
		   FROM projects
		  WHERE deleted_at IS NULL AND name ILIKE $1
		    AND ($2 = '' OR company_id::text = $2)
		  ORDER BY name, project_id
		  LIMIT $3 OFFSET $4`,
		pattern, f.CompanyID, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]project.Project, 0, f.Size)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, p)
	}
	return res, total, rows.Err()
}

func (r *ProjectRepository) NameTaken(ctx context.Context, companyID, name string) (bool, error) {
	var exists bool
	err := queryRow(ctx, r.db,
		`SELECT EXISTS(
			SELECT 1
			  FROM projects
			 WHERE company_id = $1
			   AND lower(name) = lower($2)
			   AND deleted_at IS NULL
		)`,
		companyID, name,
	).Scan(&exists)
	return exists, err
}
