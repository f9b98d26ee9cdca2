package notification

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"hrservice/internal/domain"
)

type Service interface {
	Create(ctx context.Context, n Notification) (Notification, error)
	List(ctx context.Context, f Filter) (domain.Page[Notification], error)
	MarkSent(ctx context.Context, id, response string) (Notification, error)
}

type service struct {
	notifications Repository
	now           func() time.Time
}

func NewService(notifications Repository) Service {
	return &service{
		notifications: notifications,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, n Notification) (Notification, error) {
	n.Title = strings.TrimSpace(n.Title)
	n.Body = strings.TrimSpace(n.Body)
	if n.Title == "" || n.Body == "" {
		return Notification{}, domain.BadRequest("title and body are required")
	}
	if !n.Step.Valid() {
		return Notification{}, domain.BadRequest("invalid step")
	}
	if !n.Entity.Valid() {
		return Notification{}, domain.BadRequest("invalid entity")
	}
	n.ID = uuid.NewString()
	n.Attempts = 0
	n.SentAt = nil
	return s.notifications.Create(ctx, n)
}

func (s *service) List(ctx context.Context, f Filter) (domain.Page[Notification], error) {
	f.PageRequest = f.PageRequest.Normalize()
	items, total, err := s.notifications.List(ctx, f)
	if err != nil {
		return domain.Page[Notification]{}, err
	}
	return domain.Page[Notification]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

// MarkSent records a delivery attempt and its provider response.
func (s *service) MarkSent(ctx context.Context, id, response string) (Notification, error) {
	return s.notifications.MarkSent(ctx, id, response, s.now())
}
