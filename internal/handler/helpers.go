package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/internal/service"
	"github.com/ama-chapter/portal/internal/session"
	"github.com/ama-chapter/portal/pkg/backend"
)

const sessionCookie = "portal_session"

// visitorSession resolves the caller's workflow session from the cookie,
// creating one (and setting the cookie) on first contact or after eviction.
func visitorSession(c echo.Context, store *session.Store) *session.State {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		if state, ok := store.Get(cookie.Value); ok {
			return state
		}
	}

	id, state := store.Create()
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return state
}

// httpError maps workflow and backend errors onto HTTP statuses. Backend
// errors keep their upstream status, validation failures are 400s, and
// single-flight violations are conflicts.
func httpError(err error) error {
	var apiErr *backend.APIError
	switch {
	case errors.As(err, &apiErr):
		return echo.NewHTTPError(apiErr.Status, apiErr.Message)
	case errors.Is(err, service.ErrSubmissionInFlight), errors.Is(err, service.ErrCheckoutInFlight):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrFormNotOpen), service.IsCheckoutValidationError(err):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
