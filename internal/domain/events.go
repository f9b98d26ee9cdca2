package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// EventName identifies a domain event. Each domain declares its own closed set.
type EventName string

var ErrUnknownEvent = errors.New("unknown event name")

type Event struct {
	ID         string
	Name       EventName
	Payload    any
	OccurredAt time.Time
}

func NewEvent(name EventName, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Name:       name,
		Payload:    payload,
		OccurredAt: time.Now().UTC(),
	}
}

// EventHandler reacts to a published event. Returned errors are reported by
// the bus and never reach the publisher.
type EventHandler func(ctx context.Context, e Event) error

type EventBus interface {
	Publish(ctx context.Context, e Event) error
}

type EventRegistrar interface {
	Register(name EventName, h EventHandler) error
}

// Identifiable is implemented by event payloads that reference a stored entity.
type Identifiable interface {
	EntityID() string
}
