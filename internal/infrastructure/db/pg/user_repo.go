package pg

import (
	"context"
	"database/sql"
	"errors"

	"hrservice/internal/domain"
	"hrservice/internal/domain/user"
)

const userColumns = `user_id, firstname, lastname, mobile, avatar, is_banned, created_at, updated_at`

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row scanner) (user.User, error) {
	var (
		u                    user.User
		createdAt, updatedAt sql.NullTime
	)
	if err := row.Scan(&u.ID, &u.Firstname, &u.Lastname, &u.Mobile, &u.Avatar, &u.IsBanned, &createdAt, &updatedAt); err != nil {
		return user.User{}, err
	}
	u.CreatedAt = timePtr(createdAt)
	u.UpdatedAt = timePtr(updatedAt)
	return u, nil
}

func (r *UserRepository) List(ctx context.Context, f user.Filter) ([]user.User, int, error) {
	pattern := likePattern(f.Query)

	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*) FROM users WHERE firstname ILIKE $1 OR lastname ILIKE $1`,
		pattern,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+userColumns+`
		   FROM users
		  WHERE firstname ILIKE $1 OR lastname ILIKE $1
		  ORDER BY lastname, firstname, user_id
		  LIMIT $2 OFFSET $3`,
		pattern, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]user.User, 0, f.Size)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, u)
	}
	return res, total, rows.Err()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	u, err := scanUser(queryRow(ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1`,
		id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return user.User{}, domain.NotFound("user not found")
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}
