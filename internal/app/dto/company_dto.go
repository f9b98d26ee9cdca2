package dto

import "time"

type Company struct {
	CompanyID   string     `json:"company_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	IsActive    bool       `json:"is_active"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

type CompanyCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	IsActive    *bool  `json:"is_active"`
}

type CompanyUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	IsActive    *bool   `json:"is_active"`
}
