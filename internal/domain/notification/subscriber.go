package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hrservice/internal/domain"
	"hrservice/internal/domain/resume"
)

// StatusSubscriber notifies the owner of a resume when its status changes.
type StatusSubscriber struct {
	notifications Repository
	log           *zap.Logger
}

func NewStatusSubscriber(notifications Repository, log *zap.Logger) *StatusSubscriber {
	return &StatusSubscriber{notifications: notifications, log: log}
}

func (s *StatusSubscriber) Register(r domain.EventRegistrar) error {
	return r.Register(resume.EventUpdateStatus, s.OnStatusChanged)
}

func (s *StatusSubscriber) OnStatusChanged(ctx context.Context, e domain.Event) error {
	r, err := resume.FromEvent(e)
	if err != nil {
		return err
	}

	if r.CreatedBy == "" {
		s.log.Debug("status notification skipped, resume has no owner", zap.String("resume_id", r.ID))
		return nil
	}

	eventID := e.ID
	_, err = s.notifications.Create(ctx, Notification{
		ID:            uuid.NewString(),
		Title:         "Resume status changed",
		Body:          fmt.Sprintf("%s %s moved to %s", r.Firstname, r.Lastname, r.Status),
		UserID:        r.CreatedBy,
		Step:          StepResumeStatus,
		Entity:        EntityResume,
		EntityID:      r.ID,
		SourceEventID: &eventID,
		CreatedBy:     r.CreatedBy,
	})
	if err != nil {
		return fmt.Errorf("create status notification: %w", err)
	}
	return nil
}
