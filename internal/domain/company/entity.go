package company

import (
	"time"

	"hrservice/internal/domain"
)

type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	IsActive    bool
	CreatedBy   string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

type Patch struct {
	Name        *string
	Description *string
	Website     *string
	IsActive    *bool
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.Website == nil && p.IsActive == nil
}

type Filter = domain.PageRequest
