package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ama-chapter/portal/internal/models"
	"github.com/ama-chapter/portal/pkg/media"
)

// ContentBackend is the slice of the backend client the content layer reads
// through.
type ContentBackend interface {
	GetEvents(ctx context.Context) ([]models.Event, error)
	GetSections(ctx context.Context, page string) ([]models.PageSection, error)
	GetTeam(ctx context.Context) ([]models.TeamMember, error)
	GetGallery(ctx context.Context) ([]models.GalleryItem, error)
	GetSettings(ctx context.Context) ([]models.Setting, error)
}

type contentEntry struct {
	fetchedAt time.Time
	valid     bool
}

func (e contentEntry) fresh(now time.Time, ttl time.Duration) bool {
	return e.valid && ttl > 0 && now.Sub(e.fetchedAt) < ttl
}

// ContentService caches backend reads for the configured revalidation
// interval (0 disables caching entirely) and resolves media references on
// the way out. Cached values are replaced wholesale on refresh, never merged
// field by field.
type ContentService struct {
	api      ContentBackend
	resolver *media.Resolver
	ttl      time.Duration
	now      func() time.Time

	mu          sync.Mutex
	events      []models.Event
	eventsMeta  contentEntry
	sections    map[string][]models.PageSection
	sectionMeta map[string]contentEntry
	team        []models.TeamMember
	teamMeta    contentEntry
	gallery     []models.GalleryItem
	galleryMeta contentEntry
	settings    []models.Setting
	settingMeta contentEntry
}

func NewContentService(api ContentBackend, resolver *media.Resolver, ttl time.Duration) *ContentService {
	return &ContentService{
		api:         api,
		resolver:    resolver,
		ttl:         ttl,
		now:         time.Now,
		sections:    make(map[string][]models.PageSection),
		sectionMeta: make(map[string]contentEntry),
	}
}

func (s *ContentService) resolveRef(ref *string) *string {
	if ref == nil {
		return nil
	}
	resolved := s.resolver.ResolveMediaURL(*ref)
	if resolved == "" {
		return ref
	}
	return &resolved
}

// Events returns the event list, reporting whether it came from an
// authoritative fetch rather than the cache.
func (s *ContentService) Events(ctx context.Context) ([]models.Event, bool, error) {
	s.mu.Lock()
	if s.eventsMeta.fresh(s.now(), s.ttl) {
		cached := s.events
		s.mu.Unlock()
		return cached, false, nil
	}
	s.mu.Unlock()

	events, err := s.api.GetEvents(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("fetch events: %w", err)
	}
	for i := range events {
		events[i].ImageURL = s.resolveRef(events[i].ImageURL)
	}

	s.mu.Lock()
	s.events = events
	s.eventsMeta = contentEntry{fetchedAt: s.now(), valid: true}
	s.mu.Unlock()
	return events, true, nil
}

func (s *ContentService) Sections(ctx context.Context, page string) ([]models.PageSection, error) {
	s.mu.Lock()
	if s.sectionMeta[page].fresh(s.now(), s.ttl) {
		cached := s.sections[page]
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	sections, err := s.api.GetSections(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("fetch %s sections: %w", page, err)
	}
	for i := range sections {
		sections[i].ImageURL = s.resolveRef(sections[i].ImageURL)
	}

	s.mu.Lock()
	s.sections[page] = sections
	s.sectionMeta[page] = contentEntry{fetchedAt: s.now(), valid: true}
	s.mu.Unlock()
	return sections, nil
}

func (s *ContentService) Team(ctx context.Context) ([]models.TeamMember, error) {
	s.mu.Lock()
	if s.teamMeta.fresh(s.now(), s.ttl) {
		cached := s.team
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	team, err := s.api.GetTeam(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch team: %w", err)
	}
	for i := range team {
		team[i].ImageURL = s.resolveRef(team[i].ImageURL)
	}

	s.mu.Lock()
	s.team = team
	s.teamMeta = contentEntry{fetchedAt: s.now(), valid: true}
	s.mu.Unlock()
	return team, nil
}

func (s *ContentService) Gallery(ctx context.Context) ([]models.GalleryItem, error) {
	s.mu.Lock()
	if s.galleryMeta.fresh(s.now(), s.ttl) {
		cached := s.gallery
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	gallery, err := s.api.GetGallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch gallery: %w", err)
	}
	for i := range gallery {
		if resolved := s.resolver.ResolveMediaURL(gallery[i].URL); resolved != "" {
			gallery[i].URL = resolved
		}
	}

	s.mu.Lock()
	s.gallery = gallery
	s.galleryMeta = contentEntry{fetchedAt: s.now(), valid: true}
	s.mu.Unlock()
	return gallery, nil
}

func (s *ContentService) Settings(ctx context.Context) ([]models.Setting, error) {
	s.mu.Lock()
	if s.settingMeta.fresh(s.now(), s.ttl) {
		cached := s.settings
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	settings, err := s.api.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch settings: %w", err)
	}

	s.mu.Lock()
	s.settings = settings
	s.settingMeta = contentEntry{fetchedAt: s.now(), valid: true}
	s.mu.Unlock()
	return settings, nil
}
