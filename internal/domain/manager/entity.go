package manager

import "time"

// Entity names what a manager is attached to.
type Entity string

const (
	EntityCompany  Entity = "company"
	EntityPosition Entity = "position"
)

type Manager struct {
	ID        string
	Entity    Entity
	EntityID  string
	UserID    string
	CreatedBy string
	CreatedAt *time.Time
}
