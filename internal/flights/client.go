package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPSource fetches flights from a board API over HTTP.
type HTTPSource struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

var _ Source = (*HTTPSource)(nil)

const (
	defaultAPIBind   = "127.0.0.1:8088"
	defaultUserAgent = "flightboard/0.1"
	requestTimeout   = 5 * time.Second
)

// NewHTTPSource builds an HTTPSource for the given host:port or URL.
func NewHTTPSource(apiURL string) (*HTTPSource, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &HTTPSource{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Fetch retrieves GET /api/flights/{view}. Every failure is a *FetchError.
func (c *HTTPSource) Fetch(ctx context.Context, view ViewMode) ([]Record, error) {
	if c == nil {
		return nil, fetchError(view, fmt.Errorf("source is nil"))
	}
	var payload []Record
	if err := c.do(ctx, "/api/flights/"+url.PathEscape(string(view)), &payload); err != nil {
		return nil, fetchError(view, err)
	}
	if payload == nil {
		payload = []Record{}
	}
	return payload, nil
}

func (c *HTTPSource) do(ctx context.Context, path string, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
