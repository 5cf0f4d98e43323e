//go:build !((linux && cgo) || windows || darwin)

package player

import "time"

// AudioAvailable indicates whether audio playback is supported in this build.
// Audio requires CGO for the native sound libraries on linux.
const AudioAvailable = false

// noopOutput keeps the player functional without sound.
type noopOutput struct{}

func newOutput() output {
	return noopOutput{}
}

func (noopOutput) play(data []byte, onDone func()) error { return nil }

func (noopOutput) setPaused(paused bool) {}

func (noopOutput) stop() {}

func (noopOutput) position() time.Duration { return 0 }

func (noopOutput) duration() time.Duration { return 0 }

func (noopOutput) seek(pos time.Duration) error { return nil }
