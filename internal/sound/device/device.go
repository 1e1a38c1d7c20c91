package device

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/sound"
)

const (
	sampleRate              = beep.SampleRate(44100)
	speakerBufferDurationMs = 50
	// drainInterval is how often Run polls sound.Queue; the queue itself
	// never blocks a Push, so a short fixed poll period is enough to keep
	// sfx latency unnoticeable without a wakeup channel.
	drainInterval = 15 * time.Millisecond
)

// Device is the beep-backed playback sink spec §6 calls the audio
// thread: it owns the only *beep.Mixer and the only call to
// speaker.Init/speaker.Play in the module, following the teacher's
// SoundManager (audio/sound_manager.go) almost verbatim in shape, only
// driven by sound.Action instead of game-specific method calls.
type Device struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	queue    *sound.Queue
	voices   map[core.Entity]*beep.Ctrl
	listener listenerState

	initialized bool
	stop        chan struct{}
	done        chan struct{}
}

type listenerState struct {
	x, y, angle float64
}

func New(queue *sound.Queue) *Device {
	return &Device{
		mixer:  &beep.Mixer{},
		queue:  queue,
		voices: make(map[core.Entity]*beep.Ctrl),
		stop:   make(chan struct{}),
	}
}

// Init opens the speaker device and starts the mixer playing. Following
// SoundManager.Initialize, this is idempotent and safe to call once at
// startup.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*speakerBufferDurationMs)); err != nil {
		return err
	}
	speaker.Play(d.mixer)
	d.initialized = true
	return nil
}

// Run drains sound.Queue on a fixed interval until Stop is called. It is
// meant to be launched with `go device.Run()`, the "own thread" spec §5
// describes for audio.
func (d *Device) Run() {
	d.done = make(chan struct{})
	defer close(d.done)
	ticker := time.NewTicker(drainInterval)
	defer ticker.Stop()
	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.drainOnce()
		}
	}
}

// Stop halts Run and blocks until its goroutine has returned.
func (d *Device) Stop() {
	close(d.stop)
	if d.done != nil {
		<-d.done
	}
}

func (d *Device) drainOnce() {
	for _, a := range d.queue.Drain() {
		d.apply(a)
	}
}

func (d *Device) apply(a sound.Action) {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch a.Kind {
	case sound.ActionUpdateListener:
		d.listener = listenerState{x: a.X, y: a.Y, angle: a.Angle}

	case sound.ActionStartSfx:
		base := buildStreamer(a.Sfx, sampleRate)
		if base == nil {
			return
		}
		pan, gain := 0.0, 1.0
		if a.UID != core.NoEntity {
			var dist float64
			pan, dist = bearingToPan(d.listener.x, d.listener.y, d.listener.angle, a.X, a.Y)
			gain = distanceGain(dist)
			if gain <= 0 {
				return
			}
		}
		streamer := newStereoPan(base, pan, gain)
		ctrl := &beep.Ctrl{Streamer: streamer}
		if old, ok := d.voices[a.UID]; ok && a.UID != core.NoEntity {
			old.Paused = true
		}
		if a.UID != core.NoEntity {
			d.voices[a.UID] = ctrl
		}
		d.mixer.Add(ctrl)

	case sound.ActionStopSfx:
		if ctrl, ok := d.voices[a.UID]; ok {
			ctrl.Paused = true
			delete(d.voices, a.UID)
		}

	case sound.ActionStartMusic:
		// Music playback needs a track asset pipeline this module has no
		// spec'd format for; StartMusic requests are accepted (so callers
		// never need to special-case "no music backend") but are a no-op
		// until a track source exists.
	}
}
