package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/internal/service"
)

type ContentHandler struct {
	content *service.ContentService
}

func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/sections", h.ListSections)
	g.GET("/team", h.ListTeam)
	g.GET("/gallery", h.ListGallery)
	g.GET("/settings", h.ListSettings)
}

func (h *ContentHandler) ListSections(c echo.Context) error {
	page := c.QueryParam("page")
	if page != "home" && page != "about" {
		return echo.NewHTTPError(http.StatusBadRequest, "page must be home or about")
	}

	sections, err := h.content.Sections(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sections)
}

func (h *ContentHandler) ListTeam(c echo.Context) error {
	team, err := h.content.Team(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, team)
}

func (h *ContentHandler) ListGallery(c echo.Context) error {
	gallery, err := h.content.Gallery(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, gallery)
}

func (h *ContentHandler) ListSettings(c echo.Context) error {
	settings, err := h.content.Settings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, settings)
}
