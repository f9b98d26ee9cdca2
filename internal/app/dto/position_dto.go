package dto

import "time"

type Position struct {
	PositionID string     `json:"position_id"`
	ProjectID  string     `json:"project_id"`
	CompanyID  string     `json:"company_id"`
	Title      string     `json:"title"`
	Level      string     `json:"level"`
	IsActive   bool       `json:"is_active"`
	CreatedBy  string     `json:"created_by"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

type PositionCreate struct {
	ProjectID string `json:"project_id"`
	CompanyID string `json:"company_id"`
	Title     string `json:"title"`
	Level     string `json:"level"`
	IsActive  *bool  `json:"is_active"`
}

type PositionUpdate struct {
	ProjectID *string `json:"project_id"`
	CompanyID *string `json:"company_id"`
	Title     *string `json:"title"`
	Level     *string `json:"level"`
	IsActive  *bool   `json:"is_active"`
}
