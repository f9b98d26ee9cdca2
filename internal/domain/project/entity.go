package project

import (
	"time"

	"hrservice/internal/domain"
)

type Project struct {
	ID          string
	CompanyID   string
	Name        string
	Description string
	CreatedBy   string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

type Filter struct {
	domain.PageRequest
	CompanyID string
}
