package notification

import (
	"time"

	"hrservice/internal/domain"
)

type Step string

const (
	StepResumeStatus  Step = "resume_status"
	StepResumeComment Step = "resume_comment"
)

func (s Step) Valid() bool {
	return s == StepResumeStatus || s == StepResumeComment
}

type Entity string

const (
	EntityResume   Entity = "resume"
	EntityPosition Entity = "position"
	EntityCompany  Entity = "company"
)

func (e Entity) Valid() bool {
	switch e {
	case EntityResume, EntityPosition, EntityCompany:
		return true
	}
	return false
}

type Notification struct {
	ID            string
	Title         string
	Body          string
	UserID        string
	Step          Step
	Entity        Entity
	EntityID      string
	Attempts      int
	SentAt        *time.Time
	Response      *string
	SourceEventID *string
	CreatedBy     string
	CreatedAt     *time.Time
}

type Filter struct {
	domain.PageRequest
	UserID string
}
