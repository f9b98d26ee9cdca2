package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hrservice/internal/domain"
	"hrservice/internal/domain/resume"
)

const resumeColumns = `resume_id, firstname, lastname, email, mobile, position_id, status,
	stage_entered_at, stage_exited_at, processing_duration_ms,
	comment_count, call_history_count, file_count, file_path,
	created_by, created_at, updated_at`

// counterColumns is the closed set of columns IncrementSummary may touch.
var counterColumns = map[resume.Counter]string{
	resume.CounterComment:     "comment_count",
	resume.CounterCallHistory: "call_history_count",
	resume.CounterFile:        "file_count",
}

type ResumeRepository struct {
	db *sql.DB
}

func NewResumeRepository(db *sql.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

func resumeNotFound() error {
	return domain.NotFound("resume not found")
}

func scanResume(row scanner) (resume.Resume, error) {
	var (
		r                    resume.Resume
		positionID           sql.NullString
		status               string
		enteredAt, exitedAt  sql.NullTime
		durationMS           sql.NullInt64
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&r.ID, &r.Firstname, &r.Lastname, &r.Email, &r.Mobile, &positionID, &status,
		&enteredAt, &exitedAt, &durationMS,
		&r.Summary.CommentCount, &r.Summary.CallHistoryCount, &r.Summary.FileCount, &r.FilePath,
		&r.CreatedBy, &createdAt, &updatedAt,
	)
	if err != nil {
		return resume.Resume{}, err
	}

	r.Status = resume.Status(status)
	if positionID.Valid {
		v := positionID.String
		r.PositionID = &v
	}
	r.StageEnteredAt = timePtr(enteredAt)
	r.StageExitedAt = timePtr(exitedAt)
	if durationMS.Valid {
		d := time.Duration(durationMS.Int64) * time.Millisecond
		r.ProcessingDuration = &d
	}
	r.CreatedAt = timePtr(createdAt)
	r.UpdatedAt = timePtr(updatedAt)
	return r, nil
}

func (r *ResumeRepository) one(ctx context.Context, q string, args ...any) (resume.Resume, error) {
	res, err := scanResume(queryRow(ctx, r.db, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return resume.Resume{}, resumeNotFound()
	}
	return res, err
}

func (r *ResumeRepository) Create(ctx context.Context, res resume.Resume) (resume.Resume, error) {
	created, err := r.one(ctx,
		`INSERT INTO resumes (resume_id, firstname, lastname, email, mobile, position_id, status, stage_entered_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+resumeColumns,
		res.ID, res.Firstname, res.Lastname, res.Email, res.Mobile, res.PositionID,
		string(res.Status), res.StageEnteredAt, res.CreatedBy,
	)
	return created, refError(err, "position does not exist")
}

func (r *ResumeRepository) GetByID(ctx context.Context, id string) (resume.Resume, error) {
	return r.one(ctx,
		`SELECT `+resumeColumns+`
		   FROM resumes
		  WHERE resume_id = $1 AND deleted_at IS NULL`,
		id,
	)
}

func (r *ResumeRepository) List(ctx context.Context, f resume.Filter) ([]resume.Resume, int, error) {
	pattern := likePattern(f.Query)
	status := string(f.Status)

	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*)
		   FROM resumes
		  WHERE deleted_at IS NULL
		    AND (firstname ILIKE $1 OR lastname ILIKE $1 OR email ILIKE $1)
		    AND ($2 = '' OR status = $2)`,
		pattern, status,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+resumeColumns+`
		   FROM resumes
		  WHERE deleted_at IS NULL
		    AND (firstname ILIKE $1 OR lastname ILIKE $1 OR email ILIKE $1)
		    AND ($2 = '' OR status = $2)
		  ORDER BY created_at DESC, resume_id
		  LIMIT $3 OFFSET $4`,
		pattern, status, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]resume.Resume, 0, f.Size)
	for rows.Next() {
		item, err := scanResume(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, item)
	}
	return res, total, rows.Err()
}

func (r *ResumeRepository) Update(ctx context.Context, id string, p resume.Patch) (resume.Resume, error) {
	updated, err := r.one(ctx,
		`UPDATE resumes
		    SET firstname = COALESCE($2, firstname),
		        lastname = COALESCE($3, lastname),
		        email = COALESCE($4, email),
		        mobile = COALESCE($5, mobile),
		        position_id = CASE WHEN $7::boolean THEN NULL ELSE COALESCE($6, position_id) END,
		        updated_at = NOW()
		  WHERE resume_id = $1 AND deleted_at IS NULL
		  RETURNING `+resumeColumns,
		id, p.Firstname, p.Lastname, p.Email, p.Mobile, p.PositionID, p.ClearPosition,
	)
	return updated, refError(err, "position does not exist")
}

func (r *ResumeRepository) SoftDelete(ctx context.Context, id string) (resume.Resume, error) {
	return r.one(ctx,
		`UPDATE resumes
		    SET deleted_at = NOW(), updated_at = NOW()
		  WHERE resume_id = $1 AND deleted_at IS NULL
		  RETURNING `+resumeColumns,
		id,
	)
}

// UpdateStatus closes the current stage at `at`. The stage that just ended
// becomes the entered stage, so each transition measures only its own stage.
func (r *ResumeRepository) UpdateStatus(ctx context.Context, id string, status resume.Status, at time.Time) (resume.Resume, error) {
	return r.one(ctx,
		`UPDATE resumes
		    SET status = $2,
		        stage_entered_at = COALESCE(stage_exited_at, stage_entered_at),
		        stage_exited_at = $3,
		        updated_at = NOW()
		  WHERE resume_id = $1 AND deleted_at IS NULL
		  RETURNING `+resumeColumns,
		id, string(status), at,
	)
}

func (r *ResumeRepository) SetFile(ctx context.Context, id, path string) (resume.Resume, error) {
	return r.one(ctx,
		`UPDATE resumes
		    SET file_path = $2, updated_at = NOW()
		  WHERE resume_id = $1 AND deleted_at IS NULL
		  RETURNING `+resumeColumns,
		id, path,
	)
}

func (r *ResumeRepository) AddComment(ctx context.Context, c resume.Comment) (resume.Comment, error) {
	var createdAt sql.NullTime
	if err := queryRow(ctx, r.db,
		`INSERT INTO resume_comments (comment_id, resume_id, body, created_by)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		c.ID, c.ResumeID, c.Body, c.CreatedBy,
	).Scan(&createdAt); err != nil {
		return resume.Comment{}, err
	}
	c.CreatedAt = timePtr(createdAt)
	return c, nil
}

func (r *ResumeRepository) ListComments(ctx context.Context, resumeID string) ([]resume.Comment, error) {
	rows, err := query(ctx, r.db,
		`SELECT comment_id, resume_id, body, created_by, created_at
		   FROM resume_comments
		  WHERE resume_id = $1
		  ORDER BY created_at, comment_id`,
		resumeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []resume.Comment
	for rows.Next() {
		var (
			c         resume.Comment
			createdAt sql.NullTime
		)
		if err := rows.Scan(&c.ID, &c.ResumeID, &c.Body, &c.CreatedBy, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt = timePtr(createdAt)
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ResumeRepository) AddCallHistory(ctx context.Context, h resume.CallHistory) (resume.CallHistory, error) {
	if _, err := exec(ctx, r.db,
		`INSERT INTO resume_call_histories (call_id, resume_id, result, description, called_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		h.ID, h.ResumeID, string(h.Result), h.Description, h.CalledAt, h.CreatedBy,
	); err != nil {
		return resume.CallHistory{}, err
	}
	return h, nil
}

func (r *ResumeRepository) SetProcessingDuration(ctx context.Context, id string, d time.Duration) error {
	res, err := exec(ctx, r.db,
		`UPDATE resumes SET processing_duration_ms = $2 WHERE resume_id = $1 AND deleted_at IS NULL`,
		id, d.Milliseconds(),
	)
	if err != nil {
		return err
	}
	return expectAffected(res, resumeNotFound)
}

// MarkEventProcessed records eventID and reports whether it was new.
func (r *ResumeRepository) MarkEventProcessed(ctx context.Context, eventID, resumeID string) (bool, error) {
	res, err := exec(ctx, r.db,
		`INSERT INTO resume_processed_events (event_id, resume_id) VALUES ($1, $2) ON CONFLICT (event_id) DO NOTHING`,
		eventID, resumeID,
	)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// IncrementSummary adds one to the counter in a single statement.
func (r *ResumeRepository) IncrementSummary(ctx context.Context, id string, c resume.Counter) error {
	col, ok := counterColumns[c]
	if !ok {
		return fmt.Errorf("unknown summary counter %q", c)
	}
	res, err := exec(ctx, r.db,
		`UPDATE resumes SET `+col+` = `+col+` + 1 WHERE resume_id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	return expectAffected(res, resumeNotFound)
}

func expectAffected(res sql.Result, notFound func() error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound()
	}
	return nil
}
