package resume_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"hrservice/internal/domain"
	"hrservice/internal/domain/position"
	"hrservice/internal/domain/resume"
)

// uowFake tracks whether a transaction is open so tests can assert that
// events leave only after commit.
type uowFake struct {
	mu   sync.Mutex
	inTx bool
}

func (u *uowFake) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.mu.Lock()
	u.inTx = true
	u.mu.Unlock()
	defer func() {
		u.mu.Lock()
		u.inTx = false
		u.mu.Unlock()
	}()
	return fn(ctx)
}

func (u *uowFake) open() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.inTx
}

// positionsFake holds the ids of live positions.
type positionsFake map[string]bool

func (p positionsFake) GetByID(_ context.Context, id string) (position.Position, error) {
	if !p[id] {
		return position.Position{}, domain.NotFound("position not found")
	}
	return position.Position{ID: id}, nil
}

type busFake struct {
	uow       *uowFake
	events    []domain.Event
	publishTx []bool
	err       error
}

func (b *busFake) Publish(_ context.Context, e domain.Event) error {
	b.events = append(b.events, e)
	if b.uow != nil {
		b.publishTx = append(b.publishTx, b.uow.open())
	}
	return b.err
}

func (b *busFake) names() []domain.EventName {
	out := make([]domain.EventName, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Name)
	}
	return out
}

type resumeRepoFake struct {
	mu        sync.Mutex
	byID      map[string]resume.Resume
	deleted   map[string]bool
	comments  map[string][]resume.Comment
	calls     map[string][]resume.CallHistory
	processed map[string]bool

	failWrite      error
	durationWrites int
}

func newResumeRepoFake() *resumeRepoFake {
	return &resumeRepoFake{
		byID:      map[string]resume.Resume{},
		deleted:   map[string]bool{},
		comments:  map[string][]resume.Comment{},
		calls:     map[string][]resume.CallHistory{},
		processed: map[string]bool{},
	}
}

func notFound() error { return domain.NotFound("resume not found") }

func (r *resumeRepoFake) put(res resume.Resume) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[res.ID] = res
}

func (r *resumeRepoFake) get(id string) resume.Resume {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byID[id]
}

func (r *resumeRepoFake) live(id string) (resume.Resume, bool) {
	res, ok := r.byID[id]
	if !ok || r.deleted[id] {
		return resume.Resume{}, false
	}
	return res, true
}

func (r *resumeRepoFake) Create(_ context.Context, res resume.Resume) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return resume.Resume{}, r.failWrite
	}
	r.byID[res.ID] = res
	return res, nil
}

func (r *resumeRepoFake) GetByID(_ context.Context, id string) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.live(id)
	if !ok {
		return resume.Resume{}, notFound()
	}
	return res, nil
}

func (r *resumeRepoFake) List(_ context.Context, f resume.Filter) ([]resume.Resume, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []resume.Resume
	for id, res := range r.byID {
		if r.deleted[id] {
			continue
		}
		if f.Status != "" && res.Status != f.Status {
			continue
		}
		if f.Query != "" && !strings.Contains(strings.ToLower(res.Firstname+" "+res.Lastname), strings.ToLower(f.Query)) {
			continue
		}
		out = append(out, res)
	}
	return out, len(out), nil
}

func (r *resumeRepoFake) Update(_ context.Context, id string, p resume.Patch) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return resume.Resume{}, r.failWrite
	}
	res, ok := r.live(id)
	if !ok {
		return resume.Resume{}, notFound()
	}
	if p.Firstname != nil {
		res.Firstname = *p.Firstname
	}
	if p.Lastname != nil {
		res.Lastname = *p.Lastname
	}
	if p.Email != nil {
		res.Email = *p.Email
	}
	if p.Mobile != nil {
		res.Mobile = *p.Mobile
	}
	if p.PositionID != nil {
		res.PositionID = p.PositionID
	}
	if p.ClearPosition {
		res.PositionID = nil
	}
	r.byID[id] = res
	return res, nil
}

func (r *resumeRepoFake) SoftDelete(_ context.Context, id string) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.live(id)
	if !ok {
		return resume.Resume{}, notFound()
	}
	r.deleted[id] = true
	return res, nil
}

func (r *resumeRepoFake) UpdateStatus(_ context.Context, id string, status resume.Status, at time.Time) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return resume.Resume{}, r.failWrite
	}
	res, ok := r.live(id)
	if !ok {
		return resume.Resume{}, notFound()
	}
	res.Status = status
	if res.StageExitedAt != nil {
		res.StageEnteredAt = res.StageExitedAt
	}
	res.StageExitedAt = &at
	r.byID[id] = res
	return res, nil
}

func (r *resumeRepoFake) SetFile(_ context.Context, id, path string) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.live(id)
	if !ok {
		return resume.Resume{}, notFound()
	}
	res.FilePath = path
	r.byID[id] = res
	return res, nil
}

func (r *resumeRepoFake) AddComment(_ context.Context, c resume.Comment) (resume.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrite != nil {
		return resume.Comment{}, r.failWrite
	}
	r.comments[c.ResumeID] = append(r.comments[c.ResumeID], c)
	return c, nil
}

func (r *resumeRepoFake) ListComments(_ context.Context, resumeID string) ([]resume.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]resume.Comment(nil), r.comments[resumeID]...), nil
}

func (r *resumeRepoFake) AddCallHistory(_ context.Context, h resume.CallHistory) (resume.CallHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[h.ResumeID] = append(r.calls[h.ResumeID], h)
	return h, nil
}

func (r *resumeRepoFake) SetProcessingDuration(_ context.Context, id string, d time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.live(id)
	if !ok {
		return notFound()
	}
	r.durationWrites++
	res.ProcessingDuration = &d
	r.byID[id] = res
	return nil
}

func (r *resumeRepoFake) MarkEventProcessed(_ context.Context, eventID, _ string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.processed[eventID] {
		return false, nil
	}
	r.processed[eventID] = true
	return true, nil
}

func (r *resumeRepoFake) IncrementSummary(_ context.Context, id string, c resume.Counter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.live(id)
	if !ok {
		return notFound()
	}
	switch c {
	case resume.CounterComment:
		res.Summary.CommentCount++
	case resume.CounterCallHistory:
		res.Summary.CallHistoryCount++
	case resume.CounterFile:
		res.Summary.FileCount++
	}
	r.byID[id] = res
	return nil
}
