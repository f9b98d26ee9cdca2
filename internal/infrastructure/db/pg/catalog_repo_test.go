package pg

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hrservice/internal/domain"
	"hrservice/internal/domain/company"
	"hrservice/internal/domain/manager"
	"hrservice/internal/domain/position"
	"hrservice/internal/domain/project"
)

func newSQLMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func requireCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var de *domain.DomainError
	require.True(t, errors.As(err, &de), "expected domain error, got %v", err)
	assert.Equal(t, code, de.Code)
}

func TestCompanyRepository_CreateRaceIsConflict(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectQuery(`INSERT INTO companies`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "companies_name_live_idx"})

	_, err := NewCompanyRepository(db).Create(context.Background(), company.Company{ID: "c1", Name: "Acme"})
	requireCode(t, err, domain.ErrorCodeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompanyRepository_UpdateRaceIsConflict(t *testing.T) {
	db, mock := newSQLMock(t)
	name := "Acme"

	mock.ExpectQuery(`UPDATE companies`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := NewCompanyRepository(db).Update(context.Background(), "c1", company.Patch{Name: &name})
	requireCode(t, err, domain.ErrorCodeConflict)
}

func TestCompanyRepository_OtherErrorsPassThrough(t *testing.T) {
	db, mock := newSQLMock(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`INSERT INTO companies`).WillReturnError(boom)

	_, err := NewCompanyRepository(db).Create(context.Background(), company.Company{ID: "c1", Name: "Acme"})
	assert.ErrorIs(t, err, boom)
}

func TestPositionRepository_TitleTaken(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectQuery(`SELECT EXISTS\(\s+SELECT 1\s+FROM positions`).
		WithArgs("c1", "Engineer", "pos1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := NewPositionRepository(db).TitleTaken(context.Background(), "c1", "Engineer", "pos1")
	require.NoError(t, err)
	assert.True(t, taken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPositionRepository_CreateDuplicateTitleIsConflict(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectQuery(`INSERT INTO positions`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "positions_title_live_idx"})

	_, err := NewPositionRepository(db).Create(context.Background(), position.Position{ID: "pos1", Title: "Engineer"})
	requireCode(t, err, domain.ErrorCodeConflict)
}

func TestProjectRepository_GetByIDNotFound(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM projects WHERE project_id = \$1 AND deleted_at IS NULL`).
		WithArgs("p9").
		WillReturnRows(sqlmock.NewRows([]string{"project_id"}))

	_, err := NewProjectRepository(db).GetByID(context.Background(), "p9")
	assert.True(t, domain.IsNotFound(err))
}

func TestProjectRepository_CreateUnknownCompany(t *testing.T) {
	db, mock := newSQLMock(t)

	mock.ExpectQuery(`INSERT INTO projects`).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := NewProjectRepository(db).Create(context.Background(), project.Project{ID: "p1", CompanyID: "c9", Name: "Hiring"})
	requireCode(t, err, domain.ErrorCodeBadRequest)
}

func TestManagerRepository_ExistsAndDuplicate(t *testing.T) {
	db, mock := newSQLMock(t)
	repo := NewManagerRepository(db)

	mock.ExpectQuery(`SELECT EXISTS\(\s+SELECT 1 FROM managers`).
		WithArgs("position", "pos1", "u1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	exists, err := repo.Exists(context.Background(), manager.EntityPosition, "pos1", "u1")
	require.NoError(t, err)
	assert.False(t, exists)

	mock.ExpectQuery(`INSERT INTO managers`).
		WithArgs("m1", "position", "pos1", "u1", "admin").
		WillReturnError(&pgconn.PgError{Code: "23505"})
	_, err = repo.Create(context.Background(), manager.Manager{
		ID: "m1", Entity: manager.EntityPosition, EntityID: "pos1", UserID: "u1", CreatedBy: "admin",
	})
	requireCode(t, err, domain.ErrorCodeConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
