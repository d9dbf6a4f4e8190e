package realtime

import "sync"

// Subscriber abstracts a live connection able to receive events.
type Subscriber interface {
	Send(payload []byte) error
	Close()
}

// Registry tracks which subscribers are interested in which scope.
// It is a multimap from scope key to subscriber set; join and leave are
// idempotent. Construct one per process and share it between the
// broadcaster and the connection handlers.
type Registry struct {
	mu     sync.RWMutex
	scopes map[string]map[Subscriber]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		scopes: make(map[string]map[Subscriber]struct{}),
	}
}

// Join subscribes a connection to a scope. Joining twice is a no-op.
func (r *Registry) Join(scope string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scopes[scope]; !ok {
		r.scopes[scope] = make(map[Subscriber]struct{})
	}
	r.scopes[scope][sub] = struct{}{}
}

// Leave unsubscribes a connection from a scope. Leaving a scope that was
// never joined is a no-op.
func (r *Registry) Leave(scope string, sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.remove(scope, sub)
}

// Drop removes a connection from every scope. Called on disconnect.
func (r *Registry) Drop(sub Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for scope := range r.scopes {
		r.remove(scope, sub)
	}
}

// remove deletes the subscriber and prunes the empty scope set.
// Callers must hold the write lock.
func (r *Registry) remove(scope string, sub Subscriber) {
	subs, ok := r.scopes[scope]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.scopes, scope)
	}
}

// Subscribers returns a snapshot of the connections joined to a scope.
func (r *Registry) Subscribers(scope string) []Subscriber {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs, ok := r.scopes[scope]
	if !ok {
		return nil
	}
	snapshot := make([]Subscriber, 0, len(subs))
	for sub := range subs {
		snapshot = append(snapshot, sub)
	}
	return snapshot
}

// Count returns the number of connections joined to a scope.
func (r *Registry) Count(scope string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.scopes[scope])
}
