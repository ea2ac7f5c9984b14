package media

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	// Some stored records still carry absolute URLs pointing at the
	// localhost backend used during early development.
	localhostPattern = regexp.MustCompile(`^https?://localhost(?::\d+)?`)

	// Historical double-prefixing bug produced paths like
	// /uploads/uploads/uploads/x.jpg.
	duplicateUploads = regexp.MustCompile(`/uploads/(?:uploads/)+`)
)

// Resolver normalizes media references between the form the backend stores
// (relative paths, legacy localhost URLs) and the form the frontend can
// display (absolute URLs on the configured asset origin). It is a pure
// function of its configured origin and the input.
type Resolver struct {
	assetOrigin string
}

// NewResolver derives the asset origin (scheme://host) from the given base
// URL. An unparseable or empty base yields a resolver without an origin,
// which passes relative paths through normalized but un-prefixed.
func NewResolver(baseURL string) *Resolver {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return &Resolver{}
	}
	parsed, err := url.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &Resolver{}
	}
	return &Resolver{assetOrigin: parsed.Scheme + "://" + parsed.Host}
}

// AssetOrigin returns the configured origin, or "" when none was derived.
func (r *Resolver) AssetOrigin() string {
	return r.assetOrigin
}

// CollapseUploadSegments reduces any run of duplicated /uploads/uploads/
// prefixes down to a single /uploads/.
func CollapseUploadSegments(value string) string {
	return duplicateUploads.ReplaceAllString(value, "/uploads/")
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

// ResolveMediaURL converts a stored media reference into a displayable URL.
// Empty or whitespace-only input returns "". Absolute URLs are returned
// unchanged except that a legacy localhost origin is rewritten to the asset
// origin. Relative paths are prefixed with the asset origin when one is
// configured.
func (r *Resolver) ResolveMediaURL(ref string) string {
	normalized := CollapseUploadSegments(strings.TrimSpace(ref))
	if normalized == "" {
		return ""
	}

	if strings.HasPrefix(normalized, "http") {
		if localhostPattern.MatchString(normalized) && r.assetOrigin != "" {
			return CollapseUploadSegments(localhostPattern.ReplaceAllString(normalized, r.assetOrigin))
		}
		return normalized
	}

	if r.assetOrigin == "" {
		return normalized
	}

	return CollapseUploadSegments(r.assetOrigin + ensureLeadingSlash(normalized))
}

// PathForAPI converts a displayable URL back into the server-relative path
// the backend persists. Empty input returns "". Absolute URLs on the asset
// origin or a legacy localhost origin are reduced to their path component;
// any other absolute URL also loses its origin, so callers keeping genuinely
// third-party URLs intact must check for an http prefix before calling.
func (r *Resolver) PathForAPI(ref string) string {
	trimmed := CollapseUploadSegments(strings.TrimSpace(ref))
	if trimmed == "" {
		return ""
	}

	if parsed, err := url.Parse(trimmed); err == nil && parsed.Scheme != "" && parsed.Host != "" {
		origin := parsed.Scheme + "://" + parsed.Host
		if (r.assetOrigin != "" && origin == r.assetOrigin) || localhostPattern.MatchString(trimmed) {
			return CollapseUploadSegments(ensureLeadingSlash(parsed.Path))
		}
	}

	if strings.HasPrefix(trimmed, "http://") || strings.HasPrefix(trimmed, "https://") {
		if parsed, err := url.Parse(trimmed); err == nil {
			return CollapseUploadSegments(ensureLeadingSlash(parsed.Path))
		}
	}

	return CollapseUploadSegments(ensureLeadingSlash(trimmed))
}
