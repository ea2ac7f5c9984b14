package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/internal/dto"
	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/internal/service"
	"github.com/ama-chapter/portal/internal/session"
)

type RsvpHandler struct {
	svc      *service.RsvpService
	sessions *session.Store
}

func NewRsvpHandler(svc *service.RsvpService, sessions *session.Store) *RsvpHandler {
	return &RsvpHandler{svc: svc, sessions: sessions}
}

func (h *RsvpHandler) RegisterRoutes(g *echo.Group, submitLimiter echo.MiddlewareFunc) {
	g.GET("/events", h.ListEvents)
	g.GET("/events/:id/calendar.ics", h.DownloadCalendar)
	g.GET("/rsvp-form", h.GetForm)
	g.PATCH("/rsvp-form", h.UpdateForm)
	g.POST("/events/:id/rsvp-form", h.ToggleForm)
	if submitLimiter != nil {
		g.POST("/events/:id/rsvps", h.SubmitRsvp, submitLimiter)
	} else {
		g.POST("/events/:id/rsvps", h.SubmitRsvp)
	}
}

func (h *RsvpHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.UpcomingEvents(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i, event := range events {
		resp[i] = dto.ToEventResponse(event, h.svc.TotalFor(event))
	}
	return c.JSON(http.StatusOK, resp)
}

// findEvent matches by id, falling back to title for events not yet
// assigned one.
func (h *RsvpHandler) findEvent(c echo.Context, key string) (*models.Event, error) {
	events, err := h.svc.UpcomingEvents(c.Request().Context())
	if err != nil {
		return nil, httpError(err)
	}
	for i := range events {
		if events[i].ID == key || (events[i].ID == "" && events[i].Title == key) {
			return &events[i], nil
		}
	}
	return nil, echo.NewHTTPError(http.StatusNotFound, "event not found")
}

func (h *RsvpHandler) DownloadCalendar(c echo.Context) error {
	event, err := h.findEvent(c, c.Param("id"))
	if err != nil {
		return err
	}

	payload := service.BuildICS(*event, time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+service.CalendarFilename(*event)+`"`)
	return c.Blob(http.StatusOK, "text/calendar; charset=utf-8", payload)
}

func (h *RsvpHandler) GetForm(c echo.Context) error {
	state := visitorSession(c, h.sessions)
	return c.JSON(http.StatusOK, state.Rsvp.Snapshot())
}

func (h *RsvpHandler) ToggleForm(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	state := visitorSession(c, h.sessions)
	state.Rsvp.Toggle(eventID)
	return c.JSON(http.StatusOK, state.Rsvp.Snapshot())
}

func (h *RsvpHandler) UpdateForm(c echo.Context) error {
	var req dto.RsvpFormUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	state := visitorSession(c, h.sessions)
	updated := state.Rsvp.Apply(service.RsvpFormUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		GuestCount: req.GuestCount,
		Notes:      req.Notes,
	})
	return c.JSON(http.StatusOK, updated)
}

func (h *RsvpHandler) SubmitRsvp(c echo.Context) error {
	eventID := c.Param("id")
	if eventID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	state := visitorSession(c, h.sessions)
	formState, err := state.Rsvp.Submit(c.Request().Context(), h.svc, eventID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, formState)
}
