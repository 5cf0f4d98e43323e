package core

import (
	"encoding/json"
	"fmt"
)

// Track represents a playable item returned by the backend search API.
// Tracks are value types; two tracks are the same song when their IDs match.
type Track struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Artist       string  `json:"artist"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	DurationSecs float64 `json:"duration,omitempty"`
}

// UnmarshalJSON accepts the backend's `duration` field and the older
// `duration_secs` spelling some stored lists still carry.
func (t *Track) UnmarshalJSON(data []byte) error {
	type plain Track
	aux := struct {
		*plain
		DurationSecsAlt float64 `json:"duration_secs"`
	}{plain: (*plain)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if t.DurationSecs == 0 {
		t.DurationSecs = aux.DurationSecsAlt
	}
	return nil
}

// Same reports whether t and other identify the same song.
func (t Track) Same(other Track) bool {
	return t.ID == other.ID
}

// DisplayArtist returns the artist name, or a placeholder when missing.
func (t Track) DisplayArtist() string {
	if t.Artist == "" {
		return "Unknown Artist"
	}
	return t.Artist
}

// FormatTime renders a number of seconds as m:ss. Non-finite or negative
// values (duration not yet known) render as 0:00.
func FormatTime(seconds float64) string {
	if seconds != seconds || seconds < 0 || seconds > 1<<40 {
		return "0:00"
	}
	mins := int(seconds) / 60
	secs := int(seconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatDuration is FormatTime for list rows: zero durations render empty.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}
	return FormatTime(seconds)
}
