package dto

import "time"

type Notification struct {
	NotificationID string     `json:"notification_id"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	UserID         string     `json:"user_id"`
	Step           string     `json:"step"`
	Entity         string     `json:"entity"`
	EntityID       string     `json:"entity_id"`
	Attempts       int        `json:"attempts"`
	SentAt         *time.Time `json:"sent_at"`
	Response       *string    `json:"response"`
	CreatedBy      string     `json:"created_by"`
	CreatedAt      *time.Time `json:"createdAt,omitempty"`
}

type NotificationCreate struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	UserID   string `json:"user_id"`
	Step     string `json:"step"`
	Entity   string `json:"entity"`
	EntityID string `json:"entity_id"`
}

type NotificationSent struct {
	Response string `json:"response"`
}
