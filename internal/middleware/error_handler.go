package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/pkg/backend"
)

// ErrorHandler renders every error as {"message": ...} JSON. Backend errors
// keep the upstream status and message; echo HTTP errors keep theirs.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code = apiErr.Status
		msg = apiErr.Message
	} else if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, map[string]string{"message": msg})
}
