package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ama-chapter/portal/internal/dto"
	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/pkg/backend"
	"github.com/ama-chapter/portal/pkg/media"
)

// AdminHandler forwards the dashboard's content mutations to the backend,
// normalizing media references to server-relative paths on the way in. The
// backend client owns bearer-token attachment and 401 handling.
type AdminHandler struct {
	client   *backend.Client
	resolver *media.Resolver
}

func NewAdminHandler(client *backend.Client, resolver *media.Resolver) *AdminHandler {
	return &AdminHandler{client: client, resolver: resolver}
}

func (h *AdminHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/login", h.Login)
	g.POST("/logout", h.Logout)
	g.POST("/uploads", h.Upload)

	g.GET("/events", h.ListEvents)
	g.POST("/events", h.CreateEvent)
	g.PATCH("/events/:id", h.UpdateEvent)
	g.DELETE("/events/:id", h.DeleteEvent)
	g.GET("/events/:id/rsvps", h.ListEventRsvps)

	g.GET("/sections", h.ListSections)
	g.POST("/sections", h.CreateSection)
	g.PATCH("/sections/:id", h.UpdateSection)
	g.DELETE("/sections/:id", h.DeleteSection)

	g.GET("/team", h.ListTeam)
	g.POST("/team", h.CreateTeamMember)
	g.PATCH("/team/:id", h.UpdateTeamMember)
	g.DELETE("/team/:id", h.DeleteTeamMember)

	g.GET("/gallery", h.ListGallery)
	g.POST("/gallery", h.CreateGalleryItem)
	g.PATCH("/gallery/:id", h.UpdateGalleryItem)
	g.DELETE("/gallery/:id", h.DeleteGalleryItem)

	g.GET("/settings", h.ListSettings)
	g.POST("/settings", h.UpsertSetting)
	g.DELETE("/settings/:key", h.DeleteSetting)

	g.GET("/memberships", h.ListMemberships)
	g.PATCH("/memberships/:id/status", h.UpdateMembershipStatus)
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	result, err := h.client.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httpError(err)
	}

	h.client.Tokens().Set(result.AccessToken)
	return c.JSON(http.StatusOK, result)
}

func (h *AdminHandler) Logout(c echo.Context) error {
	h.client.Tokens().Set("")
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "could not read file")
	}
	defer file.Close()

	uploaded, err := h.client.UploadImage(c.Request().Context(), fileHeader.Filename, file)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, uploaded)
}

// mediaPath relativizes an image reference for persistence. nil stays nil
// (meaning "clear the image").
func (h *AdminHandler) mediaPath(ref *string) *string {
	if ref == nil {
		return nil
	}
	p := h.resolver.PathForAPI(*ref)
	if p == "" {
		return nil
	}
	return &p
}

func (h *AdminHandler) ListEvents(c echo.Context) error {
	events, err := h.client.GetEvents(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *AdminHandler) CreateEvent(c echo.Context) error {
	var payload models.Event
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if payload.Title == "" || payload.Date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and date are required")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	created, err := h.client.CreateEvent(c.Request().Context(), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateEvent(c echo.Context) error {
	var payload models.Event
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	updated, err := h.client.UpdateEvent(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteEvent(c echo.Context) error {
	if err := h.client.DeleteEvent(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, backend.Deleted{Deleted: true})
}

func (h *AdminHandler) ListEventRsvps(c echo.Context) error {
	rsvps, err := h.client.GetEventRsvps(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rsvps)
}

func (h *AdminHandler) ListSections(c echo.Context) error {
	page := c.QueryParam("page")
	if page == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "page query parameter is required")
	}
	sections, err := h.client.GetSections(c.Request().Context(), page)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, sections)
}

func (h *AdminHandler) CreateSection(c echo.Context) error {
	var payload models.PageSection
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	created, err := h.client.CreateSection(c.Request().Context(), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateSection(c echo.Context) error {
	var payload models.PageSection
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	updated, err := h.client.UpdateSection(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteSection(c echo.Context) error {
	if err := h.client.DeleteSection(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, backend.Deleted{Deleted: true})
}

func (h *AdminHandler) ListTeam(c echo.Context) error {
	team, err := h.client.GetTeam(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, team)
}

func (h *AdminHandler) CreateTeamMember(c echo.Context) error {
	var payload models.TeamMember
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	created, err := h.client.CreateTeamMember(c.Request().Context(), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateTeamMember(c echo.Context) error {
	var payload models.TeamMember
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.ImageURL = h.mediaPath(payload.ImageURL)

	updated, err := h.client.UpdateTeamMember(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteTeamMember(c echo.Context) error {
	if err := h.client.DeleteTeamMember(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, backend.Deleted{Deleted: true})
}

// galleryURL keeps genuinely absolute URLs intact (admins may paste stock
// photo links on third-party hosts, which PathForAPI would strip) and
// relativizes everything else.
func (h *AdminHandler) galleryURL(value string) string {
	if strings.HasPrefix(value, "http") {
		return value
	}
	return h.resolver.PathForAPI(value)
}

func (h *AdminHandler) ListGallery(c echo.Context) error {
	gallery, err := h.client.GetGallery(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, gallery)
}

func (h *AdminHandler) CreateGalleryItem(c echo.Context) error {
	var payload models.GalleryItem
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if payload.URL == "" || payload.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "url and title are required")
	}
	payload.URL = h.galleryURL(payload.URL)

	created, err := h.client.CreateGalleryItem(c.Request().Context(), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *AdminHandler) UpdateGalleryItem(c echo.Context) error {
	var payload models.GalleryItem
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	payload.URL = h.galleryURL(payload.URL)

	updated, err := h.client.UpdateGalleryItem(c.Request().Context(), c.Param("id"), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteGalleryItem(c echo.Context) error {
	if err := h.client.DeleteGalleryItem(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, backend.Deleted{Deleted: true})
}

func (h *AdminHandler) ListSettings(c echo.Context) error {
	settings, err := h.client.GetSettings(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *AdminHandler) UpsertSetting(c echo.Context) error {
	var payload models.Setting
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if payload.Key == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "key is required")
	}

	saved, err := h.client.UpsertSetting(c.Request().Context(), payload)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, saved)
}

func (h *AdminHandler) DeleteSetting(c echo.Context) error {
	if err := h.client.DeleteSetting(c.Request().Context(), c.Param("key")); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, backend.Deleted{Deleted: true})
}

func (h *AdminHandler) ListMemberships(c echo.Context) error {
	memberships, err := h.client.GetMemberships(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, memberships)
}

func (h *AdminHandler) UpdateMembershipStatus(c echo.Context) error {
	var req dto.MembershipStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	status := models.MembershipStatus(req.Status)
	switch status {
	case models.StatusPending, models.StatusPaid, models.StatusCancelled:
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "status must be pending, paid or cancelled")
	}

	updated, err := h.client.UpdateMembershipStatus(c.Request().Context(), c.Param("id"), status, req.TransactionReference)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
