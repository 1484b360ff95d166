package session

import (
	"errors"
	"sync"
	"time"

	"Storefront/internal/store"
)

// DefaultMaxSessions bounds the live sessions a Registry holds.
const DefaultMaxSessions = 10000

var ErrTooManySessions = errors.New("too many live sessions")

type entry struct {
	store    *store.Store
	lastSeen time.Time
}

// Registry maps session ids to their stores. Every store shares one catalog.
type Registry struct {
	catalog *store.Catalog
	max     int
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
}

// NewRegistry returns a registry holding at most max live sessions;
// max <= 0 means DefaultMaxSessions.
func NewRegistry(c *store.Catalog, max int) *Registry {
	if max <= 0 {
		max = DefaultMaxSessions
	}
	return &Registry{
		catalog:  c,
		max:      max,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

// Get returns the store for id, creating an empty one on first use.
// Creation fails with ErrTooManySessions once the registry is full.
func (r *Registry) Get(id string) (*store.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		if len(r.sessions) >= r.max {
			return nil, ErrTooManySessions
		}
		e = &entry{store: store.New(r.catalog)}
		r.sessions[id] = e
	}
	e.lastSeen = r.now()
	return e.store, nil
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions not used within idle and returns how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := r.now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}
