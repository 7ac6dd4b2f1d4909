package component

import (
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/rohanthewiz/serr"
)

// Session groups the instances mounted for one browser session.
type Session struct {
	ID string

	mu        sync.Mutex
	instances map[string]Instance
	values    map[string]any
	lastSeen  time.Time
}

// Mount registers inst under its name, replacing any previous instance of that name.
func (s *Session) Mount(inst Instance) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.instances[inst.Name()] = inst
}

// Unmount drops the instance called name.
func (s *Session) Unmount(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.instances, name)
}

// Instance looks up a mounted instance.
func (s *Session) Instance(name string) (Instance, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inst, ok := s.instances[name]
	return inst, ok
}

// Names lists mounted instance names in sorted order.
func (s *Session) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.instances))
}

// Attach returns the value stored under key, creating it with init on first use.
// Pages use it to keep their typed hosts alongside the session. init runs
// without the session lock held, so it may call back into the session; when
// two callers race, the first stored value wins and the other is discarded.
func (s *Session) Attach(key string, init func() (any, error)) (any, error) {
	if v, ok := s.value(key); ok {
		return v, nil
	}

	v, err := init()
	if err != nil {
		return nil, serr.Wrap(err, "failed to attach "+key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.values[key]; ok {
		return existing, nil
	}
	s.values[key] = v
	return v, nil
}

func (s *Session) value(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// Registry holds the sessions of a running server.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	now      func() time.Time
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session), now: time.Now}
}

// Session returns the session with id, creating it when missing, and marks it as seen.
func (r *Registry) Session(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{ID: id, instances: make(map[string]Instance), values: make(map[string]any)}
		r.sessions[id] = s
	}
	s.mu.Lock()
	s.lastSeen = r.now()
	s.mu.Unlock()
	return s
}

// Lookup returns an existing session without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Len is the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep discards sessions not seen for longer than maxIdle and returns how many went.
func (r *Registry) Sweep(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	removed := 0
	for id, s := range r.sessions {
		s.mu.Lock()
		stale := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if stale {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
