package resume

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"hrservice/internal/domain"
)

// Subscriber keeps the derived fields of a resume in sync with its events.
type Subscriber struct {
	uow     domain.UnitOfWork
	resumes Repository
	log     *zap.Logger
}

func NewSubscriber(uow domain.UnitOfWork, resumes Repository, log *zap.Logger) *Subscriber {
	return &Subscriber{uow: uow, resumes: resumes, log: log}
}

func (s *Subscriber) Register(r domain.EventRegistrar) error {
	subs := []struct {
		name domain.EventName
		h    domain.EventHandler
	}{
		{EventCreate, s.Audit},
		{EventUpdate, s.Audit},
		{EventDelete, s.Audit},
		{EventUpdateStatus, s.RecomputeDuration},
		{EventAddComment, s.Increment(CounterComment)},
		{EventAddCallHistory, s.Increment(CounterCallHistory)},
		{EventAddFile, s.Increment(CounterFile)},
	}
	for _, sub := range subs {
		if err := r.Register(sub.name, sub.h); err != nil {
			return err
		}
	}
	return nil
}

func (s *Subscriber) Audit(_ context.Context, e domain.Event) error {
	r, err := FromEvent(e)
	if err != nil {
		return err
	}
	s.log.Info("resume event",
		zap.String("event", string(e.Name)),
		zap.String("event_id", e.ID),
		zap.String("resume_id", r.ID),
		zap.String("status", string(r.Status)),
	)
	return nil
}

// RecomputeDuration stores the time the resume spent between entering and
// leaving its processing stage. Missing or inverted timestamps are skipped.
func (s *Subscriber) RecomputeDuration(ctx context.Context, e domain.Event) error {
	r, err := FromEvent(e)
	if err != nil {
		return err
	}
	if r.StageEnteredAt == nil || r.StageExitedAt == nil {
		s.log.Debug("duration skipped, missing stage timestamps", zap.String("resume_id", r.ID))
		return nil
	}

	d := r.StageExitedAt.Sub(*r.StageEnteredAt)
	if d < 0 {
		s.log.Debug("duration skipped, exit before entry",
			zap.String("resume_id", r.ID),
			zap.Duration("duration", d),
		)
		return nil
	}

	if err := s.resumes.SetProcessingDuration(ctx, r.ID, d); err != nil {
		if domain.IsNotFound(err) {
			s.log.Debug("duration skipped, resume gone", zap.String("resume_id", r.ID))
			return nil
		}
		return fmt.Errorf("set processing duration: %w", err)
	}
	return nil
}

// Increment bumps counter by one per event. The event ID is recorded in the
// same transaction, so a redelivered event is applied once.
func (s *Subscriber) Increment(counter Counter) domain.EventHandler {
	return func(ctx context.Context, e domain.Event) error {
		r, err := FromEvent(e)
		if err != nil {
			return err
		}

		applied := false
		err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
			fresh, err := s.resumes.MarkEventProcessed(ctx, e.ID, r.ID)
			if err != nil {
				return err
			}
			if !fresh {
				return nil
			}
			if err := s.resumes.IncrementSummary(ctx, r.ID, counter); err != nil {
				return err
			}
			applied = true
			return nil
		})
		if domain.IsNotFound(err) {
			s.log.Debug("counter skipped, resume gone",
				zap.String("resume_id", r.ID),
				zap.String("counter", string(counter)),
			)
			return nil
		}
		if err != nil {
			return fmt.Errorf("increment %s: %w", counter, err)
		}
		if !applied {
			s.log.Debug("counter skipped, event already applied",
				zap.String("resume_id", r.ID),
				zap.String("event_id", e.ID),
			)
		}
		return nil
	}
}

// FromEvent extracts the resume carried by e. A nil pointer payload is an
// error.
func FromEvent(e domain.Event) (Resume, error) {
	switch p := e.Payload.(type) {
	case Resume:
		return p, nil
	case *Resume:
		if p != nil {
			return *p, nil
		}
	}
	return Resume{}, fmt.Errorf("event %s: unexpected payload %T", e.Name, e.Payload)
}
