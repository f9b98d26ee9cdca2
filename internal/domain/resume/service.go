package resume

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hrservice/internal/domain"
)

type Service interface {
	List(ctx context.Context, f Filter) (domain.Page[Resume], error)
	Get(ctx context.Context, id string) (Resume, error)
	Create(ctx context.Context, in CreateInput) (Resume, error)
	Update(ctx context.Context, id string, p Patch) (Resume, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status Status) (Resume, error)
	AddComment(ctx context.Context, id, body, userID string) (Comment, error)
	Comments(ctx context.Context, id string) ([]Comment, error)
	AddCallHistory(ctx context.Context, h CallHistory) (CallHistory, error)
	AttachFile(ctx context.Context, id, path string) (Resume, error)
}

type service struct {
	uow       domain.UnitOfWork
	resumes   Repository
	positions PositionLookup
	events    domain.EventBus
	log       *zap.Logger
	now       func() time.Time
}

func NewService(uow domain.UnitOfWork, resumes Repository, positions PositionLookup, events domain.EventBus, log *zap.Logger) Service {
	return &service{
		uow:       uow,
		resumes:   resumes,
		positions: positions,
		events:    events,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) List(ctx context.Context, f Filter) (domain.Page[Resume], error) {
	f.PageRequest = f.PageRequest.Normalize()
	f.Query = strings.TrimSpace(f.Query)
	if f.Status != "" && !f.Status.Valid() {
		return domain.Page[Resume]{}, domain.BadRequest("invalid status")
	}

	items, total, err := s.resumes.List(ctx, f)
	if err != nil {
		return domain.Page[Resume]{}, err
	}
	return domain.Page[Resume]{Items: items, Page: f.Page, Size: f.Size, Total: total}, nil
}

func (s *service) Get(ctx context.Context, id string) (Resume, error) {
	return s.resumes.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, in CreateInput) (Resume, error) {
	now := s.now()
	r := Resume{
		ID:             uuid.NewString(),
		Firstname:      in.Firstname,
		Lastname:       in.Lastname,
		Email:          strings.ToLower(in.Email),
		Mobile:         in.Mobile,
		PositionID:     in.PositionID,
		Status:         StatusPending,
		StageEnteredAt: &now,
		CreatedBy:      in.CreatedBy,
	}

	var res Resume
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkPosition(ctx, r.PositionID); err != nil {
			return err
		}
		created, err := s.resumes.Create(ctx, r)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		return Resume{}, err
	}

	s.publish(ctx, EventCreate, res)
	return res, nil
}

func (s *service) Update(ctx context.Context, id string, p Patch) (Resume, error) {
	if p.Empty() {
		return Resume{}, domain.BadRequest("nothing to update")
	}
	if p.ClearPosition && p.PositionID != nil {
		return Resume{}, domain.BadRequest("position cannot be set and cleared at once")
	}
	if p.Email != nil {
		lower := strings.ToLower(*p.Email)
		p.Email = &lower
	}

	var res Resume
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.checkPosition(ctx, p.PositionID); err != nil {
			return err
		}
		updated, err := s.resumes.Update(ctx, id, p)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	if err != nil {
		return Resume{}, err
	}

	s.publish(ctx, EventUpdate, res)
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	var res Resume
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		deleted, err := s.resumes.SoftDelete(ctx, id)
		if err != nil {
			return err
		}
		res = deleted
		return nil
	})
	if err != nil {
		return err
	}

	s.publish(ctx, EventDelete, res)
	return nil
}

func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (Resume, error) {
	if !status.Valid() {
		return Resume{}, domain.BadRequest("invalid status")
	}

	var res Resume
	changed := false
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.resumes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == status {
			res = current
			return nil
		}

		updated, err := s.resumes.UpdateStatus(ctx, id, status, s.now())
		if err != nil {
			return err
		}
		res = updated
		changed = true
		return nil
	})
	if err != nil {
		return Resume{}, err
	}

	if changed {
		s.publish(ctx, EventUpdateStatus, res)
	}
	return res, nil
}

func (s *service) AddComment(ctx context.Context, id, body, userID string) (Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Comment{}, domain.BadRequest("comment body is required")
	}

	var (
		res    Comment
		parent Resume
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resumes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		parent = r

		c, err := s.resumes.AddComment(ctx, Comment{
			ID:        uuid.NewString(),
			ResumeID:  id,
			Body:      body,
			CreatedBy: userID,
		})
		if err != nil {
			return err
		}
		res = c
		return nil
	})
	if err != nil {
		return Comment{}, err
	}

	s.publish(ctx, EventAddComment, parent)
	return res, nil
}

func (s *service) Comments(ctx context.Context, id string) ([]Comment, error) {
	if _, err := s.resumes.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.resumes.ListComments(ctx, id)
}

func (s *service) AddCallHistory(ctx context.Context, h CallHistory) (CallHistory, error) {
	if !h.Result.Valid() {
		return CallHistory{}, domain.BadRequest("invalid call result")
	}
	if h.CalledAt.IsZero() {
		h.CalledAt = s.now()
	}
	h.ID = uuid.NewString()

	var (
		res    CallHistory
		parent Resume
	)
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		r, err := s.resumes.GetByID(ctx, h.ResumeID)
		if err != nil {
			return err
		}
		parent = r

		created, err := s.resumes.AddCallHistory(ctx, h)
		if err != nil {
			return err
		}
		res = created
		return nil
	})
	if err != nil {
		return CallHistory{}, err
	}

	s.publish(ctx, EventAddCallHistory, parent)
	return res, nil
}

func (s *service) AttachFile(ctx context.Context, id, path string) (Resume, error) {
	if path == "" {
		return Resume{}, domain.BadRequest("file is required")
	}

	var res Resume
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		updated, err := s.resumes.SetFile(ctx, id, path)
		if err != nil {
			return err
		}
		res = updated
		return nil
	})
	if err != nil {
		return Resume{}, err
	}

	s.publish(ctx, EventAddFile, res)
	return res, nil
}

// checkPosition requires a referenced position to exist and not be deleted.
func (s *service) checkPosition(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	_, err := s.positions.GetByID(ctx, *id)
	return err
}

// publish runs after the transaction committed. Its outcome never changes the
// result of the mutation.
func (s *service) publish(ctx context.Context, name domain.EventName, r Resume) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, domain.NewEvent(name, r)); err != nil {
		s.log.Error("publish event",
			zap.String("event", string(name)),
			zap.String("resume_id", r.ID),
			zap.Error(err),
		)
	}
}
