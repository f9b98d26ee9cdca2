package pg

import (
	"context"
	"database/sql"
	"time"

	"hrservice/internal/domain/stats"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) GetStatusStats(ctx context.Context, positionID *string) ([]stats.StatusStat, error) {
	const q = `
	SELECT status, COUNT(*) AS resume_count,
	       AVG(processing_duration_ms)::BIGINT AS avg_duration_ms
	FROM resumes
	WHERE deleted_at IS NULL
	  AND ($1::uuid IS NULL OR position_id = $1::uuid)
	GROUP BY status
	ORDER BY status;`

	var arg any
	if positionID != nil {
		arg = *positionID
	}

	rows, err := query(ctx, r.db, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []stats.StatusStat
	for rows.Next() {
		var (
			s   stats.StatusStat
			avg sql.NullInt64
		)
		if err := rows.Scan(&s.Status, &s.ResumeCount, &avg); err != nil {
			return nil, err
		}
		if avg.Valid {
			d := time.Duration(avg.Int64) * time.Millisecond
			s.AvgProcessingDuration = &d
		}
		res = append(res, s)
	}

	return res, rows.Err()
}

func (r *StatsRepository) GetPositionStats(ctx context.Context) ([]stats.PositionStat, error) {
	const q = `
	SELECT p.position_id, COUNT(r.resume_id) AS resume_count,
	       COALESCE(SUM(r.comment_count), 0) AS comment_total
	FROM positions p LEFT JOIN resumes r
	  ON r.position_id = p.position_id AND r.deleted_at IS NULL
	WHERE p.deleted_at IS NULL
	GROUP BY p.position_id
	ORDER BY p.position_id;`

	rows, err := query(ctx, r.db, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []stats.PositionStat
	for rows.Next() {
		var s stats.PositionStat
		if err := rows.Scan(&s.PositionID, &s.ResumeCount, &s.CommentTotal); err != nil {
			return nil, err
		}
		res = append(res, s)
	}

	return res, rows.Err()
}
