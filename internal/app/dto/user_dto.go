package dto

import "time"

type User struct {
	UserID    string     `json:"user_id"`
	Firstname string     `json:"firstname"`
	Lastname  string     `json:"lastname"`
	Mobile    string     `json:"mobile"`
	Avatar    string     `json:"avatar"`
	IsBanned  bool       `json:"is_banned"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
