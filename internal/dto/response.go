package dto

import (
	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/internal/service"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

// EventResponse decorates a backend event with the display RSVP total
// (server aggregate plus any optimistic local delta).
type EventResponse struct {
	models.Event
	RsvpTotal int `json:"rsvpTotal"`
}

func ToEventResponse(event models.Event, total int) EventResponse {
	return EventResponse{Event: event, RsvpTotal: total}
}

type PlanResponse struct {
	ID string `json:"id"`
	service.Plan
}
