package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ama-chapter/portal/internal/models"
)

func strPtr(s string) *string { return &s }

func TestRsvpFormSession_StartsClosed(t *testing.T) {
	form := NewRsvpFormSession()

	state := form.Snapshot()

	assert.Equal(t, FormClosed, state.Phase)
	assert.Empty(t, state.ActiveEventID)
	assert.Equal(t, 1, state.Values.GuestCount)
}

func TestRsvpFormSession_ToggleOpensAndCollapses(t *testing.T) {
	form := NewRsvpFormSession()

	assert.True(t, form.Toggle("ev1"))
	assert.Equal(t, FormOpen, form.Snapshot().Phase)
	assert.Equal(t, "ev1", form.Snapshot().ActiveEventID)

	assert.False(t, form.Toggle("ev1"))
	assert.Equal(t, FormClosed, form.Snapshot().Phase)
}

func TestRsvpFormSession_OpeningAnotherEventDiscardsValues(t *testing.T) {
	form := NewRsvpFormSession()
	form.Toggle("ev1")
	form.Apply(RsvpFormUpdate{Name: strPtr("Alice"), GuestCount: strPtr("4")})

	assert.True(t, form.Toggle("ev2"))

	state := form.Snapshot()
	assert.Equal(t, "ev2", state.ActiveEventID)
	assert.Empty(t, state.Values.Name)
	assert.Equal(t, 1, state.Values.GuestCount, "values reset when switching events")
}

func TestRsvpFormSession_ApplyClampsGuestCount(t *testing.T) {
	form := NewRsvpFormSession()
	form.Toggle("ev1")

	state := form.Apply(RsvpFormUpdate{GuestCount: strPtr("55")})
	assert.Equal(t, 10, state.Values.GuestCount)

	state = form.Apply(RsvpFormUpdate{GuestCount: strPtr("garbage")})
	assert.Equal(t, 1, state.Values.GuestCount)
}

func TestRsvpFormSession_ApplyLeavesNilFieldsUntouched(t *testing.T) {
	form := NewRsvpFormSession()
	form.Toggle("ev1")
	form.Apply(RsvpFormUpdate{Name: strPtr("Alice"), Email: strPtr("a@x.org")})

	state := form.Apply(RsvpFormUpdate{Phone: strPtr("555-0100")})

	assert.Equal(t, "Alice", state.Values.Name)
	assert.Equal(t, "a@x.org", state.Values.Email)
	assert.Equal(t, "555-0100", state.Values.Phone)
}

func TestRsvpFormSession_SubmitWhenClosed(t *testing.T) {
	form := NewRsvpFormSession()
	svc := NewRsvpService(&mockRsvpBackend{}, nil)

	_, err := form.Submit(context.Background(), svc, "ev1")

	assert.ErrorIs(t, err, ErrFormNotOpen)
}

func TestRsvpFormSession_SubmitForDifferentEvent(t *testing.T) {
	form := NewRsvpFormSession()
	form.Toggle("ev1")
	svc := NewRsvpService(&mockRsvpBackend{}, nil)

	_, err := form.Submit(context.Background(), svc, "ev2")

	assert.ErrorIs(t, err, ErrFormNotOpen)
}

func TestRsvpFormSession_SubmitSuccess(t *testing.T) {
	var got models.CreateEventRsvp
	api := &mockRsvpBackend{
		submitFn: func(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error) {
			got = payload
			return &models.EventRsvp{ID: "r1", EventID: eventID}, nil
		},
	}
	svc := NewRsvpService(api, nil)

	form := NewRsvpFormSession()
	form.Toggle("ev1")
	form.Apply(RsvpFormUpdate{
		Name:       strPtr("Alice"),
		Email:      strPtr("a@x.org"),
		Phone:      strPtr("555-0100"),
		GuestCount: strPtr("3"),
	})

	state, err := form.Submit(context.Background(), svc, "ev1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	require.NotNil(t, got.Phone)
	assert.Equal(t, "555-0100", *got.Phone)
	assert.Nil(t, got.Notes, "empty notes are omitted from the payload")
	assert.Equal(t, 3, got.GuestCount)

	assert.Equal(t, FormClosed, state.Phase)
	assert.Equal(t, "ev1", state.SuccessEventID)
	assert.Empty(t, state.Values.Name, "values reset after a successful submit")
	assert.Equal(t, 1, state.Values.GuestCount)
}

func TestRsvpFormSession_SubmitFailureKeepsFormOpen(t *testing.T) {
	api := &mockRsvpBackend{
		submitFn: func(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error) {
			return nil, errors.New("event is full")
		},
	}
	svc := NewRsvpService(api, nil)

	form := NewRsvpFormSession()
	form.Toggle("ev1")
	form.Apply(RsvpFormUpdate{Name: strPtr("Alice"), GuestCount: strPtr("2")})

	state, err := form.Submit(context.Background(), svc, "ev1")

	assert.Error(t, err)
	assert.Equal(t, FormOpen, state.Phase)
	assert.Equal(t, "event is full", state.Error)
	assert.Equal(t, "Alice", state.Values.Name, "failed submits keep the entered values")
	assert.Empty(t, state.SuccessEventID)
}

func TestRsvpFormSession_DoubleSubmitIgnored(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	api := &mockRsvpBackend{
		submitFn: func(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error) {
			close(entered)
			<-release
			return &models.EventRsvp{ID: "r1"}, nil
		},
	}
	svc := NewRsvpService(api, nil)

	form := NewRsvpFormSession()
	form.Toggle("ev1")

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, err := form.Submit(context.Background(), svc, "ev1")
		assert.NoError(t, err)
	}()

	<-entered
	state, err := form.Submit(context.Background(), svc, "ev1")
	assert.NoError(t, err, "a submit while one is in flight returns silently")
	assert.Equal(t, FormSubmitting, state.Phase)

	close(release)
	<-done
	assert.Equal(t, int64(1), api.calls.Load())
}

func TestRsvpFormSession_ReopeningClearsSuccess(t *testing.T) {
	api := &mockRsvpBackend{
		submitFn: func(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error) {
			return &models.EventRsvp{ID: "r1"}, nil
		},
	}
	svc := NewRsvpService(api, nil)

	form := NewRsvpFormSession()
	form.Toggle("ev1")
	_, err := form.Submit(context.Background(), svc, "ev1")
	require.NoError(t, err)
	require.Equal(t, "ev1", form.Snapshot().SuccessEventID)

	form.Toggle("ev2")

	assert.Empty(t, form.Snapshot().SuccessEventID)
}
