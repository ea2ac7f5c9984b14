package service

import (
	"context"
	"errors"
	"sync"

	"github.com/ama-chapter/portal/internal/models"
)

var ErrFormNotOpen = errors.New("no RSVP form is open for this event")

const rsvpFallbackError = "We couldn't save your RSVP. Please try again."

type FormPhase string

const (
	FormClosed     FormPhase = "closed"
	FormOpen       FormPhase = "open"
	FormSubmitting FormPhase = "submitting"
)

type RsvpFormValues struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	GuestCount int    `json:"guestCount"`
	Notes      string `json:"notes"`
}

func defaultRsvpFormValues() RsvpFormValues {
	return RsvpFormValues{GuestCount: 1}
}

// RsvpFormUpdate carries partial field updates; nil fields are untouched.
// GuestCount arrives as raw text and is clamped on every update, not only at
// submit time.
type RsvpFormUpdate struct {
	Name       *string
	Email      *string
	Phone      *string
	GuestCount *string
	Notes      *string
}

// RsvpFormState is a point-in-time snapshot safe to hand to a renderer.
type RsvpFormState struct {
	ActiveEventID  string         `json:"activeEventId"`
	Phase          FormPhase      `json:"phase"`
	Values         RsvpFormValues `json:"values"`
	Error          string         `json:"error,omitempty"`
	SuccessEventID string         `json:"successEventId,omitempty"`
}

// RsvpFormSession is one visitor's RSVP form: at most one event's form is
// open at a time, opening another event's discards unsubmitted values, and
// submission is single-flight guarded at entry rather than relying on the
// UI disabling its button.
type RsvpFormSession struct {
	mu             sync.Mutex
	activeEventID  string
	values         RsvpFormValues
	submitting     bool
	errMsg         string
	successEventID string
}

func NewRsvpFormSession() *RsvpFormSession {
	return &RsvpFormSession{values: defaultRsvpFormValues()}
}

// Toggle opens the form for eventID, closing any other event's form and
// resetting values; toggling the already-open event collapses it. Reports
// whether the form is open afterwards.
func (s *RsvpFormSession) Toggle(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeEventID == eventID {
		s.activeEventID = ""
		s.errMsg = ""
		return false
	}

	s.activeEventID = eventID
	s.successEventID = ""
	s.values = defaultRsvpFormValues()
	s.errMsg = ""
	return true
}

func (s *RsvpFormSession) Apply(update RsvpFormUpdate) RsvpFormState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Name != nil {
		s.values.Name = *update.Name
	}
	if update.Email != nil {
		s.values.Email = *update.Email
	}
	if update.Phone != nil {
		s.values.Phone = *update.Phone
	}
	if update.GuestCount != nil {
		s.values.GuestCount = ClampGuestsRaw(*update.GuestCount)
	}
	if update.Notes != nil {
		s.values.Notes = *update.Notes
	}
	return s.snapshotLocked()
}

func (s *RsvpFormSession) Snapshot() RsvpFormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *RsvpFormSession) snapshotLocked() RsvpFormState {
	phase := FormClosed
	if s.activeEventID != "" {
		phase = FormOpen
		if s.submitting {
			phase = FormSubmitting
		}
	}
	return RsvpFormState{
		ActiveEventID:  s.activeEventID,
		Phase:          phase,
		Values:         s.values,
		Error:          s.errMsg,
		SuccessEventID: s.successEventID,
	}
}

// Submit sends the open form's values for eventID. A double submit while one
// is in flight is ignored. Success records the confirmation, bumps the
// optimistic total via the service, resets the form and closes it; failure
// keeps the form open with its values and the error message so the visitor
// can retry.
func (s *RsvpFormSession) Submit(ctx context.Context, svc *RsvpService, eventID string) (RsvpFormState, error) {
	s.mu.Lock()
	if s.activeEventID != eventID {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, ErrFormNotOpen
	}
	if s.submitting {
		state := s.snapshotLocked()
		s.mu.Unlock()
		return state, nil
	}
	s.submitting = true
	s.errMsg = ""
	values := s.values
	s.mu.Unlock()

	payload := models.CreateEventRsvp{
		Name:       values.Name,
		Email:      values.Email,
		GuestCount: values.GuestCount,
	}
	if values.Phone != "" {
		payload.Phone = &values.Phone
	}
	if values.Notes != "" {
		payload.Notes = &values.Notes
	}

	_, err := svc.SubmitRsvp(ctx, eventID, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = rsvpFallbackError
		}
		s.errMsg = msg
		return s.snapshotLocked(), err
	}

	s.successEventID = eventID
	s.values = defaultRsvpFormValues()
	s.errMsg = ""
	s.activeEventID = ""
	return s.snapshotLocked(), nil
}
