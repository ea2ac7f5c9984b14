package backend

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/ama-chapter/portal/internal/models"
)

type Deleted struct {
	Deleted bool `json:"deleted"`
}

func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result models.LoginResult
	if err := c.request(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UploadImage(ctx context.Context, filename string, file io.Reader) (*models.Upload, error) {
	var result models.Upload
	if err := c.upload(ctx, "/uploads", "file", filename, file, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetSections(ctx context.Context, page string) ([]models.PageSection, error) {
	var sections []models.PageSection
	err := c.request(ctx, http.MethodGet, "/page-sections?page="+url.QueryEscape(page), nil, &sections)
	return sections, err
}

func (c *Client) CreateSection(ctx context.Context, payload models.PageSection) (*models.PageSection, error) {
	var result models.PageSection
	if err := c.request(ctx, http.MethodPost, "/page-sections", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateSection(ctx context.Context, id string, payload models.PageSection) (*models.PageSection, error) {
	var result models.PageSection
	if err := c.request(ctx, http.MethodPatch, "/page-sections/"+url.PathEscape(id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteSection(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/page-sections/"+url.PathEscape(id), nil, &Deleted{})
}

func (c *Client) GetEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	err := c.request(ctx, http.MethodGet, "/events", nil, &events)
	return events, err
}

func (c *Client) CreateEvent(ctx context.Context, payload models.Event) (*models.Event, error) {
	var result models.Event
	if err := c.request(ctx, http.MethodPost, "/events", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, payload models.Event) (*models.Event, error) {
	var result models.Event
	if err := c.request(ctx, http.MethodPatch, "/events/"+url.PathEscape(id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/events/"+url.PathEscape(id), nil, &Deleted{})
}

func (c *Client) SubmitRsvp(ctx context.Context, eventID string, payload models.CreateEventRsvp) (*models.EventRsvp, error) {
	var result models.EventRsvp
	if err := c.request(ctx, http.MethodPost, "/events/"+url.PathEscape(eventID)+"/rsvps", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetEventRsvps(ctx context.Context, eventID string) ([]models.EventRsvp, error) {
	var rsvps []models.EventRsvp
	err := c.request(ctx, http.MethodGet, "/events/"+url.PathEscape(eventID)+"/rsvps", nil, &rsvps)
	return rsvps, err
}

func (c *Client) GetTeam(ctx context.Context) ([]models.TeamMember, error) {
	var team []models.TeamMember
	err := c.request(ctx, http.MethodGet, "/team", nil, &team)
	return team, err
}

func (c *Client) CreateTeamMember(ctx context.Context, payload models.TeamMember) (*models.TeamMember, error) {
	var result models.TeamMember
	if err := c.request(ctx, http.MethodPost, "/team", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateTeamMember(ctx context.Context, id string, payload models.TeamMember) (*models.TeamMember, error) {
	var result models.TeamMember
	if err := c.request(ctx, http.MethodPatch, "/team/"+url.PathEscape(id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteTeamMember(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/team/"+url.PathEscape(id), nil, &Deleted{})
}

func (c *Client) GetGallery(ctx context.Context) ([]models.GalleryItem, error) {
	var items []models.GalleryItem
	err := c.request(ctx, http.MethodGet, "/gallery", nil, &items)
	return items, err
}

func (c *Client) CreateGalleryItem(ctx context.Context, payload models.GalleryItem) (*models.GalleryItem, error) {
	var result models.GalleryItem
	if err := c.request(ctx, http.MethodPost, "/gallery", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateGalleryItem(ctx context.Context, id string, payload models.GalleryItem) (*models.GalleryItem, error) {
	var result models.GalleryItem
	if err := c.request(ctx, http.MethodPatch, "/gallery/"+url.PathEscape(id), payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteGalleryItem(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/gallery/"+url.PathEscape(id), nil, &Deleted{})
}

func (c *Client) GetSettings(ctx context.Context) ([]models.Setting, error) {
	var settings []models.Setting
	err := c.request(ctx, http.MethodGet, "/settings", nil, &settings)
	return settings, err
}

func (c *Client) UpsertSetting(ctx context.Context, payload models.Setting) (*models.Setting, error) {
	var result models.Setting
	if err := c.request(ctx, http.MethodPost, "/settings", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) DeleteSetting(ctx context.Context, key string) error {
	return c.request(ctx, http.MethodDelete, "/settings/"+url.PathEscape(key), nil, &Deleted{})
}

func (c *Client) GetMemberships(ctx context.Context) ([]models.MembershipRegistration, error) {
	var memberships []models.MembershipRegistration
	err := c.request(ctx, http.MethodGet, "/memberships", nil, &memberships)
	return memberships, err
}

func (c *Client) CreateMembership(ctx context.Context, payload models.CreateMembership) (*models.MembershipRegistration, error) {
	var result models.MembershipRegistration
	if err := c.request(ctx, http.MethodPost, "/memberships", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateMembershipStatus(ctx context.Context, id string, status models.MembershipStatus, transactionReference *string) (*models.MembershipRegistration, error) {
	body := map[string]any{"status": status}
	if transactionReference != nil {
		body["transactionReference"] = *transactionReference
	}
	var result models.MembershipRegistration
	if err := c.request(ctx, http.MethodPatch, "/memberships/"+url.PathEscape(id)+"/status", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
