package dto

import "time"

type Manager struct {
	ManagerID string     `json:"manager_id"`
	Entity    string     `json:"entity"`
	EntityID  string     `json:"entity_id"`
	UserID    string     `json:"user_id"`
	CreatedBy string     `json:"created_by"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

type ManagerAssign struct {
	ManagerID string `json:"manager_id"`
}
