package pg

import (
	"context"
	"database/sql"
	"errors"

	"hrservice/internal/domain"
	"hrservice/internal/domain/company"
)

const companyColumns = `company_id, name, description, website, is_active, created_by, created_at, updated_at`

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func companyNotFound() error {
	return domain.NotFound("company not found")
}

func scanCompany(row scanner) (company.Company, error) {
	var (
		c                    company.Company
		createdAt, updatedAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.IsActive, &c.CreatedBy, &createdAt, &updatedAt); err != nil {
		return company.Company{}, err
	}
	c.CreatedAt = timePtr(createdAt)
	c.UpdatedAt = timePtr(updatedAt)
	return c, nil
}

func (r *CompanyRepository) one(ctx context.Context, q string, args ...any) (company.Company, error) {
	c, err := scanCompany(queryRow(ctx, r.db, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return company.Company{}, companyNotFound()
	}
	return c, err
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (company.Company, error) {
	created, err := r.one(ctx,
		`INSERT INTO companies (company_id, name, description, website, is_active, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+companyColumns,
		c.ID, c.Name, c.Description, c.Website, c.IsActive, c.CreatedBy,
	)
	return created, uniqueError(err, "company name already exists")
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	return r.one(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE company_id = $1 AND deleted_at IS NULL`,
		id,
	)
}

func (r *CompanyRepository) List(ctx context.Context, f company.Filter) ([]company.Company, int, error) {
	pattern := likePattern(f.Query)

	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*) FROM companies WHERE deleted_at IS NULL AND name ILIKE $1`,
		pattern,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+companyColumns+`
		   FROM companies
		  WHERE deleted_at IS NULL AND name ILIKE $1
		  ORDER BY name, company_id
		  LIMIT $2 OFFSET $3`,
		pattern, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]company.Company, 0, f.Size)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, c)
	}
	return res, total, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, id string, p company.Patch) (company.Company, error) {
	updated, err := r.one(ctx,
		`UPDATE companies
		    SET name = COALESCE($2, name),
		        description = COALESCE($3, description),
		        website = COALESCE($4, website),
		        is_active = COALESCE($5, is_active),
		        updated_at = NOW()
		  WHERE company_id = $1 AND deleted_at IS NULL
		  RETURNING `+companyColumns,
		id, p.Name, p.Description, p.Website, p.IsActive,
	)
	return updated, uniqueError(err, "company name already exists")
}

func (r *CompanyRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := exec(ctx, r.db,
		`UPDATE companies SET deleted_at = NOW() WHERE company_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, companyNotFound)
}

func (r *CompanyRepository) NameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	var exists bool
	err := queryRow(ctx, r.db,
		`SELECT EXISTS(
			SELECT 1
			  FROM companies
			 WHERE lower(name) = lower($1)
			   AND deleted_at IS NULL
			   AND ($2 = '' OR company_id::text <> $2)
		)`,
		name, excludeID,
	).Scan(&exists)
	return exists, err
}
