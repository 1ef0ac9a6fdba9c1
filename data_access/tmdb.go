package data_access

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netflix-clone-backend/models"
)

// UpstreamError is returned when TMDB answers with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("tmdb %s returned status %d", e.Path, e.StatusCode)
}

// NotFound reports whether TMDB has no resource at the requested path.
func (e *UpstreamError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

type TMDBClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewTMDBClient(apiKey, baseURL string, timeout time.Duration) *TMDBClient {
	return &TMDBClient{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch issues an authenticated GET for path and decodes the JSON body into out.
func (c *TMDBClient) Fetch(ctx context.Context, path string, query url.Values, out any) error {
	if c.apiKey == "" {
		return fmt.Errorf("TMDB API key not configured")
	}

	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	if q.Get("language") == "" {
		q.Set("language", "en-US")
	}
	reqURL := c.baseURL + path + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("error building TMDB request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request to TMDB API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 240))
		return &UpstreamError{StatusCode: resp.StatusCode, Path: path, Body: string(b)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error decoding TMDB response for %s: %w", path, err)
	}
	return nil
}

func (c *TMDBClient) FetchPage(ctx context.Context, path string, query url.Values) (*models.Page, error) {
	var page models.Page
	if err := c.Fetch(ctx, path, query, &page); err != nil {
		return nil, err
	}
	if page.Results == nil {
		page.Results = []models.Content{}
	}
	return &page, nil
}

func (c *TMDBClient) FetchContent(ctx context.Context, path string, query url.Values) (models.Content, error) {
	var content models.Content
	if err := c.Fetch(ctx, path, query, &content); err != nil {
		return nil, err
	}
	return content, nil
}

func (c *TMDBClient) FetchCredits(ctx context.Context, path string) (*models.Credits, error) {
	var credits models.Credits
	if err := c.Fetch(ctx, path, nil, &credits); err != nil {
		return nil, err
	}
	if credits.Cast == nil {
		credits.Cast = []models.Content{}
	}
	return &credits, nil
}
