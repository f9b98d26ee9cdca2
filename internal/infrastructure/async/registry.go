package async

import (
	"fmt"

	"hrservice/internal/domain"
)

// Registry maps declared event names to their ordered handlers. It is filled
// during start-up and only read afterwards, so it carries no lock.
type Registry struct {
	declared map[domain.EventName]struct{}
	handlers map[domain.EventName][]domain.EventHandler
}

func NewRegistry(names ...domain.EventName) *Registry {
	r := &Registry{
		declared: make(map[domain.EventName]struct{}, len(names)),
		handlers: make(map[domain.EventName][]domain.EventHandler, len(names)),
	}
	r.Declare(names...)
	return r
}

// Declare adds names to the closed set accepted by Register and Publish.
func (r *Registry) Declare(names ...domain.EventName) {
	for _, n := range names {
		if n == "" {
			continue
		}
		r.declared[n] = struct{}{}
	}
}

func (r *Registry) Register(name domain.EventName, h domain.EventHandler) error {
	if name == "" {
		return fmt.Errorf("register handler: empty event name")
	}
	if h == nil {
		return fmt.Errorf("register handler for %q: nil handler", name)
	}
	if _, ok := r.declared[name]; !ok {
		return fmt.Errorf("register handler for %q: %w", name, domain.ErrUnknownEvent)
	}
	r.handlers[name] = append(r.handlers[name], h)
	return nil
}

// Handlers returns the handlers for name in registration order.
func (r *Registry) Handlers(name domain.EventName) ([]domain.EventHandler, error) {
	if _, ok := r.declared[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownEvent)
	}
	return r.handlers[name], nil
}
