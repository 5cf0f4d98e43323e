package core

// View identifies one of the fixed screens of the player.
type View int

const (
	ViewMenu View = iota
	ViewNowPlaying
	ViewSearch
	ViewSettings
	ViewLikedSongs
)

// Title returns the status-bar title for the view.
func (v View) Title() string {
	switch v {
	case ViewMenu:
		return "iRetro"
	case ViewNowPlaying:
		return "Now Playing"
	case ViewSearch:
		return "Search"
	case ViewSettings:
		return "Settings"
	case ViewLikedSongs:
		return "Liked Songs"
	}
	return "iRetro"
}

// NavStack is the ordered stack of visible views. The bottom is always
// ViewMenu and the stack can never become empty: Pop at depth 1 is a no-op.
type NavStack struct {
	views []View
}

// NewNavStack returns a stack showing the menu.
func NewNavStack() *NavStack {
	return &NavStack{views: []View{ViewMenu}}
}

// Current returns the view on top of the stack.
func (s *NavStack) Current() View {
	return s.views[len(s.views)-1]
}

// Push makes v the current view.
func (s *NavStack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop removes the current view and returns the newly visible one.
// At depth 1 it leaves the stack untouched.
func (s *NavStack) Pop() View {
	if len(s.views) > 1 {
		s.views = s.views[:len(s.views)-1]
	}
	return s.Current()
}

// Depth returns the number of views on the stack.
func (s *NavStack) Depth() int {
	return len(s.views)
}

// Cursor is a clamped selection index into a list-bearing view.
// It is meaningless (held at 0) while the list is empty.
type Cursor int

// Up moves the cursor one row up, stopping at 0.
func (c Cursor) Up() Cursor {
	if c > 0 {
		return c - 1
	}
	return 0
}

// Down moves the cursor one row down, stopping at the last row of a
// list with the given length.
func (c Cursor) Down(length int) Cursor {
	if int(c) < length-1 {
		return c + 1
	}
	return c.ClampTo(length)
}

// ClampTo forces the cursor into [0, length). An empty list yields 0.
func (c Cursor) ClampTo(length int) Cursor {
	if length <= 0 || c < 0 {
		return 0
	}
	if int(c) >= length {
		return Cursor(length - 1)
	}
	return c
}
