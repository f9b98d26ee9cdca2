package notification_test

import (
	"context"
	"sync"
	"time"

	"hrservice/internal/domain"
	"hrservice/internal/domain/notification"
)

type notificationRepoFake struct {
	mu      sync.Mutex
	byID    map[string]notification.Notification
	sources map[string]bool
	err     error
}

func newNotificationRepoFake() *notificationRepoFake {
	return &notificationRepoFake{
		byID:    map[string]notification.Notification{},
		sources: map[string]bool{},
	}
}

func (r *notificationRepoFake) Create(_ context.Context, n notification.Notification) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return notification.Notification{}, r.err
	}
	if n.SourceEventID != nil {
		if r.sources[*n.SourceEventID] {
			return n, nil
		}
		r.sources[*n.SourceEventID] = true
	}
	r.byID[n.ID] = n
	return n, nil
}

func (r *notificationRepoFake) List(_ context.Context, f notification.Filter) ([]notification.Notification, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var res []notification.Notification
	for _, n := range r.byID {
		if f.UserID == "" || n.UserID == f.UserID {
			res = append(res, n)
		}
	}
	return res, len(res), nil
}

func (r *notificationRepoFake) MarkSent(_ context.Context, id, response string, at time.Time) (notification.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	n, ok := r.byID[id]
	if !ok {
		return notification.Notification{}, domain.NotFound("notification not found")
	}
	n.Attempts++
	n.SentAt = &at
	n.Response = &response
	r.byID[id] = n
	return n, nil
}
