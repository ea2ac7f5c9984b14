package service

import (
	"sync"

	"github.com/ama-chapter/portal/internal/models"
)

// RsvpTotals tracks optimistic per-event deltas on top of the
// server-maintained rsvpCount aggregate. Deltas are bumped on successful
// submissions, never decremented (there is no cancel flow), and cleared
// wholesale whenever an authoritative fetch replaces the event list.
type RsvpTotals struct {
	mu     sync.RWMutex
	deltas map[string]int
}

func NewRsvpTotals() *RsvpTotals {
	return &RsvpTotals{deltas: make(map[string]int)}
}

func (t *RsvpTotals) Bump(eventID string, guests int) {
	if eventID == "" || guests <= 0 {
		return
	}
	t.mu.Lock()
	t.deltas[eventID] += guests
	t.mu.Unlock()
}

// Reconcile discards every pending delta. Called after an authoritative
// fetch, whose counts already include anything submitted before it.
func (t *RsvpTotals) Reconcile() {
	t.mu.Lock()
	t.deltas = make(map[string]int)
	t.mu.Unlock()
}

// TotalFor returns the display total for an event: the server aggregate plus
// any pending local delta, or 0 when neither is known.
func (t *RsvpTotals) TotalFor(event models.Event) int {
	total := 0
	if event.RsvpCount != nil {
		total = *event.RsvpCount
	}
	if event.ID == "" {
		return total
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	return total + t.deltas[event.ID]
}
