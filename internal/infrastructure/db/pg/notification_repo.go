package pg

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hrservice/internal/domain"
	"hrservice/internal/domain/notification"
)

const notificationColumns = `notification_id, title, body, user_id, step, entity, entity_id,
	attempts, sent_at, response, source_event_id, created_by, created_at`

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func scanNotification(row scanner) (notification.Notification, error) {
	var (
		n                 notification.Notification
		step, entity      string
		sentAt, createdAt sql.NullTime
		response, source  sql.NullString
	)
	if err := row.Scan(
		&n.ID, &n.Title, &n.Body, &n.UserID, &step, &entity, &n.EntityID,
		&n.Attempts, &sentAt, &response, &source, &n.CreatedBy, &createdAt,
	); err != nil {
		return notification.Notification{}, err
	}
	n.Step = notification.Step(step)
	n.Entity = notification.Entity(entity)
	n.SentAt = timePtr(sentAt)
	n.CreatedAt = timePtr(createdAt)
	if response.Valid {
		v := response.String
		n.Response = &v
	}
	if source.Valid {
		v := source.String
		n.SourceEventID = &v
	}
	return n, nil
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (notification.Notification, error) {
	created, err := scanNotification(queryRow(ctx, r.db,
		`INSERT INTO notifications (notification_id, title, body, user_id, step, entity, entity_id, source_event_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (source_event_id) DO NOTHING
		 RETURNING `+notificationColumns,
		n.ID, n.Title, n.Body, n.UserID, string(n.Step), string(n.Entity), n.EntityID, n.SourceEventID, n.CreatedBy,
	))
	if errors.Is(err, sql.ErrNoRows) {
		// already created for this source event
		return n, nil
	}
	return created, err
}

func (r *NotificationRepository) List(ctx context.Context, f notification.Filter) ([]notification.Notification, int, error) {
	var total int
	if err := queryRow(ctx, r.db,
		`SELECT COUNT(*) FROM notifications WHERE ($1 = '' OR user_id = $1)`,
		f.UserID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := query(ctx, r.db,
		`SELECT `+notificationColumns+`
		   FROM notifications
		  WHERE ($1 = '' OR user_id = $1)
		  ORDER BY created_at DESC, notification_id
		  LIMIT $2 OFFSET $3`,
		f.UserID, f.Size, f.Offset(),
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	res := make([]notification.Notification, 0, f.Size)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, n)
	}
	return res, total, rows.Err()
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id, response string, at time.Time) (notification.Notification, error) {
	n, err := scanNotification(queryRow(ctx, r.db,
		`UPDATE notifications
		    SET attempts = attempts + 1, sent_at = $2, response = $3
		  WHERE notification_id = $1
		  RETURNING `+notificationColumns,
		id, at, response,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return notification.Notification{}, domain.NotFound("notification not found")
	}
	return n, err
}
