package core

import "testing"

func TestNavStack_NeverEmpty(t *testing.T) {
	s := NewNavStack()

	// Pop at depth 1 is a no-op.
	if got := s.Pop(); got != ViewMenu {
		t.Errorf("Pop() at root = %v, want ViewMenu", got)
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", s.Depth())
	}

	// Arbitrary push/pop sequences keep menu at the bottom.
	seq := []View{ViewSearch, ViewNowPlaying, ViewLikedSongs, ViewNowPlaying}
	for _, v := range seq {
		s.Push(v)
	}
	for i := 0; i < 20; i++ {
		s.Pop()
	}
	if s.Depth() != 1 {
		t.Errorf("Depth() after draining = %d, want 1", s.Depth())
	}
	if s.Current() != ViewMenu {
		t.Errorf("Current() after draining = %v, want ViewMenu", s.Current())
	}
}

func TestNavStack_PushPop(t *testing.T) {
	s := NewNavStack()
	s.Push(ViewSearch)
	s.Push(ViewNowPlaying)

	if s.Current() != ViewNowPlaying {
		t.Errorf("Current() = %v, want ViewNowPlaying", s.Current())
	}
	if got := s.Pop(); got != ViewSearch {
		t.Errorf("Pop() = %v, want ViewSearch", got)
	}
	if got := s.Pop(); got != ViewMenu {
		t.Errorf("Pop() = %v, want ViewMenu", got)
	}
}

func TestCursor(t *testing.T) {
	tests := []struct {
		name   string
		start  Cursor
		op     func(Cursor) Cursor
		want   Cursor
	}{
		{"up from zero stays", 0, func(c Cursor) Cursor { return c.Up() }, 0},
		{"up moves", 3, func(c Cursor) Cursor { return c.Up() }, 2},
		{"down at end stays", 4, func(c Cursor) Cursor { return c.Down(5) }, 4},
		{"down moves", 1, func(c Cursor) Cursor { return c.Down(5) }, 2},
		{"down on empty list", 0, func(c Cursor) Cursor { return c.Down(0) }, 0},
		{"clamp to shorter list", 9, func(c Cursor) Cursor { return c.ClampTo(3) }, 2},
		{"clamp on empty list", 9, func(c Cursor) Cursor { return c.ClampTo(0) }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.start); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestView_Title(t *testing.T) {
	tests := []struct {
		view View
		want string
	}{
		{ViewMenu, "iRetro"},
		{ViewNowPlaying, "Now Playing"},
		{ViewSearch, "Search"},
		{ViewSettings, "Settings"},
		{ViewLikedSongs, "Liked Songs"},
	}
	for _, tt := range tests {
		if got := tt.view.Title(); got != tt.want {
			t.Errorf("Title(%v) = %q, want %q", tt.view, got, tt.want)
		}
	}
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{192.7, "3:12"},
		{-3, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatTime(tt.secs); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}
