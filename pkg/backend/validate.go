package backend

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var apiSuffix = regexp.MustCompile(`/api/?$`)

// ValidationResult reports whether the backend answered at all. Any HTTP
// status counts as reachable; a 5xx is reported alongside so startup can log
// it without refusing to serve.
type ValidationResult struct {
	Valid bool
	Error string
}

// Validate probes the backend before the portal starts serving. It tries the
// lightweight /settings listing first, then a /health endpoint with the API
// prefix stripped, then the bare base URL. Hosted backends on onrender.com
// cold-start slowly, so those get a longer deadline.
func (c *Client) Validate(ctx context.Context) ValidationResult {
	timeout := 15 * time.Second
	if strings.Contains(c.baseURL, "render.com") || strings.Contains(c.baseURL, "onrender.com") {
		timeout = 20 * time.Second
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoints := []string{
		c.baseURL + "/settings",
		apiSuffix.ReplaceAllString(c.baseURL, "") + "/health",
		c.baseURL,
	}

	var lastErr error
	for _, endpoint := range endpoints {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
		if err != nil {
			lastErr = err
			continue
		}

		resp, err := c.http.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ValidationResult{Valid: false, Error: "backend validation timeout"}
			}
			lastErr = err
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 500 {
			return ValidationResult{
				Valid: true,
				Error: fmt.Sprintf("backend returned %d, server may be experiencing issues", resp.StatusCode),
			}
		}
		return ValidationResult{Valid: true}
	}

	msg := "backend unreachable"
	if lastErr != nil {
		msg = lastErr.Error()
	}
	return ValidationResult{Valid: false, Error: msg}
}
