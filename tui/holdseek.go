package tui

import "time"

// Hold-to-seek timing. A press held shorter than the threshold is a tap
// (discrete skip to the previous/next queue item); a press still held at
// the threshold enters seeking mode, stepping the position immediately and
// then on every repeat interval until release.
const (
	holdThreshold = 500 * time.Millisecond
	seekRepeat    = 100 * time.Millisecond
	seekStep      = 2 * time.Second
)

type seekDir int

const (
	seekNone seekDir = iota
	seekBack
	seekFwd
)

// holdSeek is the press/release state machine behind the prev/next
// buttons. Every press bumps pressID; repeat ticks carry the ID they were
// scheduled under, so ticks from a superseded press are dead on arrival
// and at most one repeat timer is ever live.
type holdSeek struct {
	dir       seekDir
	pressID   int
	pressedAt time.Time
	seeking   bool
}

// Press arms the machine and returns the ID for this press's ticks.
func (h *holdSeek) Press(dir seekDir, now time.Time) int {
	h.pressID++
	h.dir = dir
	h.pressedAt = now
	h.seeking = false
	return h.pressID
}

// Tick handles one repeat-timer firing. step reports whether to apply a
// seek adjustment now; cont whether to keep the timer alive.
func (h *holdSeek) Tick(id int, now time.Time) (step, cont bool) {
	if id != h.pressID || h.dir == seekNone {
		return false, false
	}
	if !h.seeking {
		if now.Sub(h.pressedAt) < holdThreshold {
			return false, true
		}
		h.seeking = true
	}
	return true, true
}

// Release disarms the machine. skip is true when the press never entered
// seeking mode, i.e. it was a tap; a release mid-seek fires no skip.
func (h *holdSeek) Release() (skip bool, dir seekDir) {
	dir = h.dir
	skip = h.dir != seekNone && !h.seeking
	h.dir = seekNone
	h.seeking = false
	h.pressID++
	return skip, dir
}

// Active reports whether a press is currently held.
func (h *holdSeek) Active() bool {
	return h.dir != seekNone
}
