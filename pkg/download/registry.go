package download

import (
	"sync"

	"github.com/glorpus-work/rescache/pkg/errors"
)

// ListenerFactory constructs a fresh listener for one wait call.
type ListenerFactory func() Listener

// ListenerRegistry maps listener identifiers to constructor functions.
// The embedding application registers its custom progress listeners
// here; entry points then name them by identifier.
type ListenerRegistry struct {
	mu        sync.RWMutex
	factories map[string]ListenerFactory
}

// NewListenerRegistry creates an empty registry.
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{factories: make(map[string]ListenerFactory)}
}

// Register adds or replaces the factory for id.
func (r *ListenerRegistry) Register(id string, factory ListenerFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

// New constructs the listener registered under id.
func (r *ListenerRegistry) New(id string) (Listener, error) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownListener, "%q", id)
	}
	return factory(), nil
}
