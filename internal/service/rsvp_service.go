package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/ama-chapter/portal/internal/models"
)

var ErrSubmissionInFlight = errors.New("an RSVP for this event is already being submitted")

const (
	minGuests = 1
	maxGuests = 10
)

// ClampGuests forces a guest count into the closed range [1,10].
func ClampGuests(n int) int {
	if n < minGuests {
		return minGuests
	}
	if n > maxGuests {
		return maxGuests
	}
	return n
}

// ClampGuestsRaw clamps free-text numeric input; anything non-numeric
// becomes 1.
func ClampGuestsRaw(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return minGuests
	}
	return ClampGuests(n)
}

// RsvpBackend is the slice of the backend client the RSVP workflow submits
// through.
type RsvpBackend interface {
	SubmitRsvp(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error)
}

type EventLister interface {
	Events(ctx context.Context) ([]models.Event, bool, error)
}

// RsvpService coordinates RSVP submissions: per-event single-flight
// guarding, guest clamping, and the optimistic total cache.
type RsvpService struct {
	api     RsvpBackend
	content EventLister
	totals  *RsvpTotals

	mu       sync.Mutex
	inflight map[string]bool
}

func NewRsvpService(api RsvpBackend, content EventLister) *RsvpService {
	return &RsvpService{
		api:      api,
		content:  content,
		totals:   NewRsvpTotals(),
		inflight: make(map[string]bool),
	}
}

func (s *RsvpService) Totals() *RsvpTotals {
	return s.totals
}

// UpcomingEvents lists events ordered by ascending parsed date. Events whose
// date cannot be parsed are kept and sorted to the end. An authoritative
// fetch discards pending optimistic deltas, since the server counts already
// include them.
func (s *RsvpService) UpcomingEvents(ctx context.Context) ([]models.Event, error) {
	events, authoritative, err := s.content.Events(ctx)
	if err != nil {
		return nil, err
	}
	if authoritative {
		s.totals.Reconcile()
	}

	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, aOK := parseEventDate(sorted[i].Date)
		b, bOK := parseEventDate(sorted[j].Date)
		if !aOK {
			return false
		}
		if !bOK {
			return true
		}
		return a.Before(b)
	})
	return sorted, nil
}

// SubmitRsvp submits an RSVP for one event. Per-event state is independent:
// submissions for different events never contend, while a second submission
// for the same event is rejected while one is in flight.
func (s *RsvpService) SubmitRsvp(ctx context.Context, eventID string, input models.CreateEventRsvp) (*models.EventRsvp, error) {
	s.mu.Lock()
	if s.inflight[eventID] {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inflight[eventID] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, eventID)
		s.mu.Unlock()
	}()

	input.GuestCount = ClampGuests(input.GuestCount)

	rsvp, err := s.api.SubmitRsvp(ctx, eventID, input)
	if err != nil {
		return nil, err
	}

	s.totals.Bump(eventID, input.GuestCount)
	return rsvp, nil
}

// TotalFor is the display total for an event card.
func (s *RsvpService) TotalFor(event models.Event) int {
	return s.totals.TotalFor(event)
}
