// Package player is the playback engine: it wraps a single audio output
// and plays at most one track at a time, decoding MP3 data from memory.
package player

import (
	"fmt"
	"sync"
	"time"

	"iretro/core"
)

// output is the audio backend. The real implementation lives behind build
// tags (beep/speaker needs cgo on linux); tests inject a fake.
type output interface {
	play(data []byte, onDone func()) error
	setPaused(paused bool)
	stop()
	position() time.Duration
	duration() time.Duration
	seek(pos time.Duration) error
}

// Engine owns playback state. Each started track bumps playbackID;
// finish callbacks carry the ID they were issued under so callbacks from
// tracks that were replaced mid-flight are ignored.
type Engine struct {
	mu sync.Mutex

	out        output
	track      *core.Track
	playing    bool
	playbackID uint64

	ended chan struct{}
}

// New creates an engine on the platform audio output.
func New() *Engine {
	return newEngine(newOutput())
}

func newEngine(out output) *Engine {
	return &Engine{
		out:   out,
		ended: make(chan struct{}, 1),
	}
}

// Ended signals once each time a track plays to completion. The channel is
// buffered so the output callback never blocks on a slow consumer.
func (e *Engine) Ended() <-chan struct{} {
	return e.ended
}

// Play starts the given track from its raw MP3 bytes. On failure the
// engine reports the error and stays "not playing"; it never retries.
func (e *Engine) Play(t core.Track, data []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playbackID++
	id := e.playbackID
	e.track = &t

	if err := e.out.play(data, func() { e.finished(id) }); err != nil {
		e.playing = false
		e.track = nil
		return fmt.Errorf("playback: %w", err)
	}

	e.playing = true
	return nil
}

// finished handles a track running to its end. Stale callbacks from
// superseded playbacks are dropped.
func (e *Engine) finished(id uint64) {
	e.mu.Lock()
	if id != e.playbackID {
		e.mu.Unlock()
		return
	}
	e.playing = false
	e.mu.Unlock()

	select {
	case e.ended <- struct{}{}:
	default:
	}
}

// TogglePause flips the play state and returns the new one. With no track
// loaded it is a no-op returning false.
func (e *Engine) TogglePause() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return false
	}
	e.playing = !e.playing
	e.out.setPaused(!e.playing)
	return e.playing
}

// SeekBy moves the position by delta (negative = backward), clamped to
// [0, duration]. Unknown duration makes it a no-op.
func (e *Engine) SeekBy(delta time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dur := e.out.duration()
	if dur <= 0 {
		return
	}

	pos := e.out.position() + delta
	if pos < 0 {
		pos = 0
	}
	if pos > dur {
		pos = dur
	}
	_ = e.out.seek(pos)
}

// Restart rewinds the current track to the beginning.
func (e *Engine) Restart() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.track == nil {
		return
	}
	_ = e.out.seek(0)
}

// Stop halts playback and clears the loaded track.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.playbackID++ // orphan any in-flight finish callback
	e.out.stop()
	e.track = nil
	e.playing = false
}

// Current returns a copy of the loaded track, or nil.
func (e *Engine) Current() *core.Track {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.track == nil {
		return nil
	}
	t := *e.track
	return &t
}

// Playing reports whether audio is actively playing.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playing
}

// Position returns the playback position within the current track.
func (e *Engine) Position() time.Duration {
	return e.out.position()
}

// Duration returns the current track's total length, 0 when unknown.
func (e *Engine) Duration() time.Duration {
	return e.out.duration()
}
