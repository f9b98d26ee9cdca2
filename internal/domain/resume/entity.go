package resume

import (
	"time"

	"hrservice/internal/domain"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewing Status = "reviewing"
	StatusInterview Status = "interview"
	StatusOffered   Status = "offered"
	StatusHired     Status = "hired"
	StatusRejected  Status = "rejected"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewing, StatusInterview, StatusOffered, StatusHired, StatusRejected:
		return true
	}
	return false
}

// Summary holds counters maintained by event subscribers only.
type Summary struct {
	CommentCount     int
	CallHistoryCount int
	FileCount        int
}

type Resume struct {
	ID         string
	Firstname  string
	Lastname   string
	Email      string
	Mobile     string
	PositionID *string
	Status     Status

	StageEnteredAt     *time.Time
	StageExitedAt      *time.Time
	ProcessingDuration *time.Duration
	Summary            Summary

	FilePath  string
	CreatedBy string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

func (r Resume) EntityID() string { return r.ID }

var _ domain.Identifiable = Resume{}

// Counter names a summary field.
type Counter string

const (
	CounterComment     Counter = "comment"
	CounterCallHistory Counter = "call_history"
	CounterFile        Counter = "file"
)

type Comment struct {
	ID        string
	ResumeID  string
	Body      string
	CreatedBy string
	CreatedAt *time.Time
}

type CallResult string

const (
	CallAnswered CallResult = "answered"
	CallNoAnswer CallResult = "no_answer"
	CallBusy     CallResult = "busy"
	CallRejected CallResult = "rejected"
)

func (c CallResult) Valid() bool {
	switch c {
	case CallAnswered, CallNoAnswer, CallBusy, CallRejected:
		return true
	}
	return false
}

type CallHistory struct {
	ID          string
	ResumeID    string
	Result      CallResult
	Description string
	CalledAt    time.Time
	CreatedBy   string
}

type Filter struct {
	domain.PageRequest
	Status Status
}

type CreateInput struct {
	Firstname  string
	Lastname   string
	Email      string
	Mobile     string
	PositionID *string
	CreatedBy  string
}

// Patch carries the fields a client may change; nil means unchanged.
type Patch struct {
	Firstname  *string
	Lastname   *string
	Email      *string
	Mobile     *string
	PositionID *string

	// ClearPosition detaches the resume from its position.
	ClearPosition bool
}

func (p Patch) Empty() bool {
	return p.Firstname == nil && p.Lastname == nil && p.Email == nil && p.Mobile == nil &&
		p.PositionID == nil && !p.ClearPosition
}
