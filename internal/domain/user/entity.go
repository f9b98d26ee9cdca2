package user

import (
	"time"

	"hrservice/internal/domain"
)

type User struct {
	ID        string
	Firstname string
	Lastname  string
	Mobile    string
	Avatar    string
	IsBanned  bool
	CreatedAt *time.Time
	UpdatedAt *time.Time
}

type Filter = domain.PageRequest
