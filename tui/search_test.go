package tui

import (
	"context"
	"errors"
	"testing"

	"iretro/core"
)

func TestSearchBlankQueryClears(t *testing.T) {
	s := newSearchSession()
	s.results = []core.Track{{ID: "a"}}
	s.state = searchReady

	issue, _ := s.Begin("   ")
	if issue {
		t.Fatal("blank query should not issue a request")
	}
	if s.state != searchIdle || s.message != msgTypeToSearch {
		t.Fatalf("state = %v, message = %q", s.state, s.message)
	}
	if s.results != nil {
		t.Fatal("results not cleared")
	}
}

func TestSearchStaleResponseDropped(t *testing.T) {
	s := newSearchSession()

	_, first := s.Begin("abba")
	_, second := s.Begin("abba gold")

	if applied := s.Resolve(first, []core.Track{{ID: "old"}}, nil); applied {
		t.Fatal("stale response should be dropped")
	}
	if s.state != searchLoading {
		t.Fatalf("stale response changed state to %v", s.state)
	}

	if applied := s.Resolve(second, []core.Track{{ID: "new"}}, nil); !applied {
		t.Fatal("current response should apply")
	}
	if len(s.results) != 1 || s.results[0].ID != "new" {
		t.Fatalf("results = %+v", s.results)
	}
}

func TestSearchBlankQueryInvalidatesPending(t *testing.T) {
	s := newSearchSession()

	_, tok := s.Begin("abba")
	s.Begin("   ")

	if applied := s.Resolve(tok, []core.Track{{ID: "old"}}, nil); applied {
		t.Fatal("response for a cleared query should be dropped")
	}
	if s.state != searchIdle {
		t.Fatalf("state = %v, want idle", s.state)
	}
	if s.results != nil {
		t.Fatalf("results = %+v, want nil", s.results)
	}
}

func TestSearchNoResults(t *testing.T) {
	s := newSearchSession()
	_, tok := s.Begin("xyzzy")
	s.Resolve(tok, nil, nil)
	if s.state != searchReady || s.message != msgNoResults {
		t.Fatalf("state = %v, message = %q", s.state, s.message)
	}
}

func TestSearchTimeoutMessage(t *testing.T) {
	s := newSearchSession()
	_, tok := s.Begin("slow")
	s.Resolve(tok, nil, context.DeadlineExceeded)
	if s.state != searchFailed || s.message != msgSearchTimeout {
		t.Fatalf("state = %v, message = %q", s.state, s.message)
	}
}

func TestSearchErrorMessage(t *testing.T) {
	s := newSearchSession()
	_, tok := s.Begin("boom")
	s.Resolve(tok, nil, errors.New("connection refused"))
	if s.message != "Search failed: connection refused" {
		t.Fatalf("message = %q", s.message)
	}
}

func TestSearchDebounceToken(t *testing.T) {
	s := newSearchSession()
	a := s.Keystroke()
	b := s.Keystroke()
	if s.DebounceCurrent(a) {
		t.Fatal("superseded keystroke should not be current")
	}
	if !s.DebounceCurrent(b) {
		t.Fatal("latest keystroke should be current")
	}
}
