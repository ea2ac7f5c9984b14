package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

const assetBase = "https://assets.example.org/api"

func TestResolveMediaURL_EmptyInput(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "", r.ResolveMediaURL(""))
	assert.Equal(t, "", r.ResolveMediaURL("   "))
}

func TestResolveMediaURL_RelativePath(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "https://assets.example.org/uploads/x.jpg", r.ResolveMediaURL("/uploads/x.jpg"))
	assert.Equal(t, "https://assets.example.org/uploads/x.jpg", r.ResolveMediaURL("uploads/x.jpg"))
}

func TestResolveMediaURL_NoOriginConfigured(t *testing.T) {
	r := NewResolver("")

	assert.Equal(t, "/uploads/x.jpg", r.ResolveMediaURL("/uploads/uploads/x.jpg"))
}

func TestResolveMediaURL_CollapsesDuplicatedUploads(t *testing.T) {
	r := NewResolver(assetBase)

	resolved := r.ResolveMediaURL("/uploads/uploads/uploads/x.png")

	assert.Equal(t, "https://assets.example.org/uploads/x.png", resolved)
	assert.NotContains(t, resolved, "uploads/uploads")
}

func TestResolveMediaURL_RewritesLegacyLocalhost(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t,
		"https://assets.example.org/uploads/a.jpg",
		r.ResolveMediaURL("http://localhost:4000/uploads/a.jpg"))
	assert.Equal(t,
		"https://assets.example.org/uploads/a.jpg?v=2",
		r.ResolveMediaURL("https://localhost/uploads/a.jpg?v=2"))
}

func TestResolveMediaURL_LeavesForeignOriginsAlone(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t,
		"https://images.stock.com/photo.jpg",
		r.ResolveMediaURL("https://images.stock.com/photo.jpg"))
}

func TestResolveMediaURL_Idempotent(t *testing.T) {
	r := NewResolver(assetBase)

	for _, ref := range []string{
		"/uploads/a.jpg",
		"http://localhost:4000/uploads/a.jpg",
		"https://images.stock.com/photo.jpg",
		"/uploads/uploads/b.png",
	} {
		once := r.ResolveMediaURL(ref)
		assert.Equal(t, once, r.ResolveMediaURL(once), "re-resolving %q", ref)
	}
}

func TestPathForAPI_EmptyInput(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "", r.PathForAPI(""))
	assert.Equal(t, "", r.PathForAPI("  "))
}

func TestPathForAPI_RelativePath(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "/uploads/a.jpg", r.PathForAPI("uploads/a.jpg"))
	assert.Equal(t, "/uploads/a.jpg", r.PathForAPI("/uploads/uploads/a.jpg"))
}

func TestPathForAPI_AssetOriginURL(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "/uploads/a.jpg", r.PathForAPI("https://assets.example.org/uploads/a.jpg"))
}

func TestPathForAPI_LegacyLocalhostURL(t *testing.T) {
	r := NewResolver(assetBase)

	assert.Equal(t, "/uploads/a.jpg", r.PathForAPI("http://localhost:4000/uploads/a.jpg"))
}

func TestPathForAPI_ForeignOriginLosesHost(t *testing.T) {
	r := NewResolver(assetBase)

	// Documented behavior: callers guard third-party URLs before calling.
	assert.Equal(t, "/photo.jpg", r.PathForAPI("https://images.stock.com/photo.jpg"))
}

func TestRoundTrip_RelativePath(t *testing.T) {
	r := NewResolver(assetBase)

	p := "/uploads/a.jpg"
	assert.Equal(t, p, r.PathForAPI(r.ResolveMediaURL(p)))
}

func TestNewResolver_UnparseableBase(t *testing.T) {
	r := NewResolver("not a url")

	assert.Equal(t, "", r.AssetOrigin())
	assert.Equal(t, "/uploads/a.jpg", r.ResolveMediaURL("/uploads/a.jpg"))
}

func TestResolveMediaURL_Properties(t *testing.T) {
	r := NewResolver(assetBase)

	rapid.Check(t, func(t *rapid.T) {
		segment := rapid.StringMatching(`[a-z0-9-]{1,12}\.(jpg|png|webp)`).Draw(t, "segment")
		depth := rapid.IntRange(1, 4).Draw(t, "depth")

		ref := strings.Repeat("/uploads", depth) + "/" + segment
		resolved := r.ResolveMediaURL(ref)

		if !strings.HasPrefix(resolved, "https://assets.example.org/") {
			t.Fatalf("resolved %q lacks asset origin: %q", ref, resolved)
		}
		if strings.Contains(resolved, "//uploads") || strings.Contains(resolved, "uploads/uploads") {
			t.Fatalf("resolved %q not normalized: %q", ref, resolved)
		}
		if again := r.ResolveMediaURL(resolved); again != resolved {
			t.Fatalf("not idempotent for %q: %q != %q", ref, again, resolved)
		}
	})
}

func TestRoundTrip_Properties(t *testing.T) {
	r := NewResolver(assetBase)

	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z0-9][a-z0-9-]{0,20}\.[a-z]{2,4}`).Draw(t, "name")
		p := "/uploads/" + name

		if got := r.PathForAPI(r.ResolveMediaURL(p)); got != p {
			t.Fatalf("round trip of %q gave %q", p, got)
		}
	})
}
