// Package lyrics fetches plain lyrics for a track from lrclib.net.
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://lrclib.net"

// ErrNotFound means the catalog has no lyrics for the track, which is
// an ordinary outcome, not a failure.
var ErrNotFound = errors.New("lyrics not found")

// Client looks up lyrics by title and artist.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

type lookupResponse struct {
	Instrumental bool   `json:"instrumental"`
	PlainLyrics  string `json:"plainLyrics"`
}

// Get returns the plain lyrics text, or ErrNotFound when the catalog
// has nothing usable.
func (c *Client) Get(ctx context.Context, title, artist string) (string, error) {
	params := url.Values{}
	params.Set("track_name", cleanQuery(title))
	params.Set("artist_name", cleanQuery(artist))

	reqURL := fmt.Sprintf("%s/api/get?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("lyrics: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("lyrics: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("lyrics: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("lyrics: %w", err)
	}

	var lr lookupResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		return "", fmt.Errorf("lyrics: parsing response: %w", err)
	}

	if lr.Instrumental {
		return "[Instrumental]", nil
	}
	if lr.PlainLyrics == "" {
		return "", ErrNotFound
	}
	return lr.PlainLyrics, nil
}

// cleanQuery strips featuring credits and parenthetical qualifiers that
// hurt exact-match lookups.
func cleanQuery(q string) string {
	q = strings.TrimSpace(q)

	lower := strings.ToLower(q)
	if idx := strings.Index(lower, " feat"); idx != -1 {
		q = q[:idx]
	}
	if idx := strings.Index(strings.ToLower(q), " ft."); idx != -1 {
		q = q[:idx]
	}
	if idx := strings.Index(q, "("); idx != -1 {
		q = q[:idx]
	}
	if idx := strings.Index(q, "["); idx != -1 {
		q = q[:idx]
	}
	return strings.TrimSpace(q)
}
