//go:build (linux && cgo) || windows || darwin

package player

import (
	"bytes"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// AudioAvailable indicates whether audio playback is supported in this build.
const AudioAvailable = true

const outputSampleRate = beep.SampleRate(44100)

// beepOutput drives the speaker via beep, decoding MP3 from memory.
type beepOutput struct {
	mu sync.Mutex

	initialized bool
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
}

func newOutput() output {
	return &beepOutput{}
}

func (o *beepOutput) play(data []byte, onDone func()) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.stopLocked()

	streamer, format, err := mp3.Decode(nopCloser{bytes.NewReader(data)})
	if err != nil {
		return err
	}

	if !o.initialized {
		if err := speaker.Init(outputSampleRate, outputSampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return err
		}
		o.initialized = true
	}

	o.streamer = streamer
	o.format = format

	resampled := beep.Resample(4, format.SampleRate, outputSampleRate, streamer)
	o.ctrl = &beep.Ctrl{Streamer: resampled}

	speaker.Play(beep.Seq(o.ctrl, beep.Callback(func() {
		if onDone != nil {
			// New goroutine: the callback runs under the speaker lock and
			// the handler will want to start the next track.
			go onDone()
		}
	})))

	return nil
}

func (o *beepOutput) setPaused(paused bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.ctrl == nil {
		return
	}
	speaker.Lock()
	o.ctrl.Paused = paused
	speaker.Unlock()
}

func (o *beepOutput) stop() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.stopLocked()
}

func (o *beepOutput) stopLocked() {
	if o.ctrl != nil {
		speaker.Lock()
		o.ctrl.Paused = true
		speaker.Unlock()
	}
	if o.streamer != nil {
		o.streamer.Close()
		o.streamer = nil
	}
	o.ctrl = nil
}

func (o *beepOutput) position() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := o.streamer.Position()
	speaker.Unlock()
	return o.format.SampleRate.D(pos)
}

func (o *beepOutput) duration() time.Duration {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return 0
	}
	return o.format.SampleRate.D(o.streamer.Len())
}

func (o *beepOutput) seek(pos time.Duration) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.streamer == nil {
		return nil
	}
	speaker.Lock()
	defer speaker.Unlock()
	return o.streamer.Seek(o.format.SampleRate.N(pos))
}

// nopCloser wraps a bytes.Reader to satisfy mp3.Decode's io.ReadCloser.
type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }
