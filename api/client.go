// Package api is the client for the iRetro backend: search-by-query and
// stream-by-id. The backend's ranking, decoding and upstream providers are
// its own business; this package only consumes the two endpoints.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"iretro/core"
)

// SearchTimeout is the hard client-side deadline on a search request.
// The backend is deployed on infrastructure that cold-starts, so the
// first search after idle can legitimately take a long time.
const SearchTimeout = 30 * time.Second

// Client talks to the iRetro backend API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a backend client. A nil httpClient falls back to
// http.DefaultClient; per-request deadlines come from contexts, not the
// client, so FetchAudio is not capped by the search timeout.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// searchEnvelope tolerates the two historical response shapes: the current
// backend returns a bare array, the previous API wrapped it in an object.
type searchEnvelope struct {
	Songs   []core.Track `json:"songs"`
	Results []core.Track `json:"results"`
}

// Search queries the backend for tracks. The context passed in is bounded
// by SearchTimeout; a deadline hit is reported as a context.DeadlineExceeded
// wrapped error so the UI can tell a cold-start timeout from a real failure.
func (c *Client) Search(ctx context.Context, query string) ([]core.Track, error) {
	ctx, cancel := context.WithTimeout(ctx, SearchTimeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s/api/search?q=%s", c.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var tracks []core.Track
	if err := json.Unmarshal(body, &tracks); err == nil {
		return tracks, nil
	}

	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("search: parsing response: %w", err)
	}
	if env.Songs != nil {
		return env.Songs, nil
	}
	return env.Results, nil
}

// StreamURL returns the playable URL for a track ID.
func (c *Client) StreamURL(id string) string {
	return fmt.Sprintf("%s/api/stream/%s", c.baseURL, url.PathEscape(id))
}

// FetchAudio downloads the full audio body for a track. The playback
// engine decodes from memory, which keeps seeking cheap; tracks are a few
// MB so this is acceptable.
func (c *Client) FetchAudio(ctx context.Context, id string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StreamURL(id), nil)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("stream: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}
	return data, nil
}
