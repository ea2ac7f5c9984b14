package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/internal/service"
)

// State holds one visitor's transient workflow state. Nothing here is
// persisted; a reload starts from scratch and re-fetches truth from the
// backend.
type State struct {
	Rsvp     *service.RsvpFormSession
	Checkout *service.CheckoutSession

	lastSeen time.Time
}

// Store is an in-memory session registry keyed by the cookie-bound uuid.
// Idle entries are evicted lazily on access.
type Store struct {
	mu      sync.Mutex
	entries map[string]*State
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*State),
		ttl:     ttl,
		now:     time.Now,
	}
}

func newState() *State {
	return &State{
		Rsvp:     service.NewRsvpFormSession(),
		Checkout: service.NewCheckoutSession(models.PlanChapter),
	}
}

// Get returns the state for id, or false when it is unknown or expired.
func (s *Store) Get(id string) (*State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	state, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	state.lastSeen = s.now()
	return state, true
}

// Create registers a fresh session and returns its id.
func (s *Store) Create() (string, *State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictLocked()

	id := uuid.NewString()
	state := newState()
	state.lastSeen = s.now()
	s.entries[id] = state
	return id, state
}

func (s *Store) evictLocked() {
	if s.ttl <= 0 {
		return
	}
	cutoff := s.now().Add(-s.ttl)
	for id, state := range s.entries {
		if state.lastSeen.Before(cutoff) {
			delete(s.entries, id)
		}
	}
}
