package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"iretro/core"
)

// searchDebounce is how long after the last keystroke a query is issued.
const searchDebounce = 300 * time.Millisecond

const (
	msgTypeToSearch  = "Type to search"
	msgSearching     = "Searching..."
	msgNoResults     = "No results found"
	msgSearchTimeout = "Search timed out. Server may be waking up, try again."
)

type searchState int

const (
	searchIdle searchState = iota
	searchLoading
	searchReady
	searchFailed
)

// searchSession owns the search view's result list and its status line.
// Every issued request carries a token; a response whose token is not the
// latest issued is discarded, so a slow early query can never clobber the
// results of a later one.
type searchSession struct {
	state    searchState
	message  string
	results  []core.Track
	token    int
	debounce int
}

func newSearchSession() searchSession {
	return searchSession{state: searchIdle, message: msgTypeToSearch}
}

// Keystroke notes an edit to the query field and returns the debounce
// token to tag the delayed trigger with.
func (s *searchSession) Keystroke() int {
	s.debounce++
	return s.debounce
}

// DebounceCurrent reports whether a fired debounce timer is still the
// latest keystroke's.
func (s *searchSession) DebounceCurrent(token int) bool {
	return token == s.debounce
}

// Begin starts a query. A blank query clears the results immediately with
// no network request; otherwise the session enters the loading state and
// the caller issues the request tagged with the returned token.
func (s *searchSession) Begin(query string) (issue bool, token int) {
	if strings.TrimSpace(query) == "" {
		// Invalidate any in-flight request too, so its late response
		// cannot resurrect the cleared results.
		s.token++
		s.state = searchIdle
		s.message = msgTypeToSearch
		s.results = nil
		return false, 0
	}

	s.token++
	s.state = searchLoading
	s.message = msgSearching
	return true, s.token
}

// Resolve applies a response. Stale tokens are dropped and the session is
// left untouched; the return value reports whether anything changed.
func (s *searchSession) Resolve(token int, tracks []core.Track, err error) bool {
	if token != s.token {
		return false
	}

	switch {
	case err != nil && errors.Is(err, context.DeadlineExceeded):
		s.state = searchFailed
		s.message = msgSearchTimeout
		s.results = nil
	case err != nil:
		s.state = searchFailed
		s.message = "Search failed: " + err.Error()
		s.results = nil
	case len(tracks) == 0:
		s.state = searchReady
		s.message = msgNoResults
		s.results = nil
	default:
		s.state = searchReady
		s.message = ""
		s.results = tracks
	}
	return true
}
