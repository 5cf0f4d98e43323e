package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"iretro/api"
	"iretro/core"
)

func TestClient_Search_ResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []core.Track
	}{
		{
			name: "bare array (current backend)",
			body: `[{"id":"x1","title":"One","artist":"A"},{"id":"x2","title":"Two","artist":"B"}]`,
			want: []core.Track{
				{ID: "x1", Title: "One", Artist: "A"},
				{ID: "x2", Title: "Two", Artist: "B"},
			},
		},
		{
			name: "backend duration field",
			body: `[{"id":"x1","title":"One","artist":"A","thumbnail_url":"http://img","duration":213}]`,
			want: []core.Track{
				{ID: "x1", Title: "One", Artist: "A", ThumbnailURL: "http://img", DurationSecs: 213},
			},
		},
		{
			name: "legacy duration_secs field",
			body: `[{"id":"x1","title":"One","artist":"A","duration_secs":97.5}]`,
			want: []core.Track{
				{ID: "x1", Title: "One", Artist: "A", DurationSecs: 97.5},
			},
		},
		{
			name: "songs envelope (old API)",
			body: `{"songs":[{"id":"x1","title":"One","artist":"A"}]}`,
			want: []core.Track{{ID: "x1", Title: "One", Artist: "A"}},
		},
		{
			name: "results envelope (old API)",
			body: `{"results":[{"id":"x1","title":"One","artist":"A"}]}`,
			want: []core.Track{{ID: "x1", Title: "One", Artist: "A"}},
		},
		{
			name: "empty array",
			body: `[]`,
			want: []core.Track{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/search" {
					t.Errorf("path = %q, want /api/search", r.URL.Path)
				}
				if got := r.URL.Query().Get("q"); got != "test query" {
					t.Errorf("q = %q, want %q", got, "test query")
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := api.NewClient(srv.Client(), srv.URL)
			got, err := c.Search(context.Background(), "test query")
			if err != nil {
				t.Fatalf("Search() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Search() returned %d tracks, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("track[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestClient_Search_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, "boom"},
		{"not found", http.StatusNotFound, ""},
		{"garbage body", http.StatusOK, "not json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := api.NewClient(srv.Client(), srv.URL)
			if _, err := c.Search(context.Background(), "q"); err == nil {
				t.Error("Search() error = nil, want error")
			}
		})
	}
}

func TestClient_Search_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := api.NewClient(srv.Client(), srv.URL)
	_, err := c.Search(ctx, "q")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Search() error = %v, want context.Canceled", err)
	}
}

func TestClient_StreamURL(t *testing.T) {
	c := api.NewClient(nil, "http://localhost:8080/")
	if got := c.StreamURL("abc123"); got != "http://localhost:8080/api/stream/abc123" {
		t.Errorf("StreamURL() = %q", got)
	}
}

func TestClient_FetchAudio(t *testing.T) {
	payload := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stream/abc" {
			t.Errorf("path = %q, want /api/stream/abc", r.URL.Path)
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write(payload)
	}))
	defer srv.Close()

	c := api.NewClient(srv.Client(), srv.URL)
	got, err := c.FetchAudio(context.Background(), "abc")
	if err != nil {
		t.Fatalf("FetchAudio() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("FetchAudio() = %v, want %v", got, payload)
	}
}

func TestClient_FetchAudio_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := api.NewClient(srv.Client(), srv.URL)
	if _, err := c.FetchAudio(context.Background(), "missing"); err == nil {
		t.Error("FetchAudio() error = nil, want error")
	}
}
