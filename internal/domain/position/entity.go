package position

import (
	"time"

	"hrservice/internal/domain"
)

type Level string

const (
	LevelIntern Level = "intern"
	LevelJunior Level = "junior"
	LevelMid    Level = "mid"
	LevelSenior Level = "senior"
	LevelLead   Level = "lead"
)

func (l Level) Valid() bool {
	switch l {
	case LevelIntern, LevelJunior, LevelMid, LevelSenior, LevelLead:
		return true
	}
	return false
}

type Position struct {
	ID        string
	ProjectID string
	CompanyID string
	Title     string
	Level     Level
	IsActive  bool
	CreatedBy string
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type Patch struct {
	ProjectID *string
	CompanyID *string
	Title     *string
	Level     *Level
	IsActive  *bool
}

func (p Patch) Empty() bool {
	return p.ProjectID == nil && p.CompanyID == nil && p.Title == nil && p.Level == nil && p.IsActive == nil
}

type Filter = domain.PageRequest
