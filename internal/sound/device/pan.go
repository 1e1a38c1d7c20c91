package device

import (
	"math"

	"github.com/gopxl/beep"
)

// stereoPan scales a mono-ish streamer's left/right channels by the
// bearing from a listener to a source, the minimal positional-audio
// equivalent of spec §6's UpdateListener/StartSfx {x, y, angle}. None of
// the pack's beep usage (teacher's audio package is entirely
// non-positional terminal-game SFX) exercises stereo panning, so this is
// written in the teacher's own style of hand-rolling a small
// beep.Streamer wrapper (audio/effects.go's envelope/oscillator) rather
// than introducing an unverified effects API.
type stereoPan struct {
	streamer beep.Streamer
	pan      float64 // -1 (full left) .. +1 (full right)
	gain     float64 // 0..1, distance attenuation
}

func newStereoPan(s beep.Streamer, pan, gain float64) beep.Streamer {
	return &stereoPan{streamer: s, pan: clamp(pan, -1, 1), gain: clamp(gain, 0, 1)}
}

func (p *stereoPan) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.streamer.Stream(samples)
	left, right := panGains(p.pan)
	for i := 0; i < n; i++ {
		samples[i][0] *= left * p.gain
		samples[i][1] *= right * p.gain
	}
	return n, ok
}

func (p *stereoPan) Err() error { return p.streamer.Err() }

// panGains turns a -1..+1 pan into equal-power left/right gains.
func panGains(pan float64) (left, right float64) {
	angle := (pan + 1) * math.Pi / 4 // 0..pi/2
	return math.Cos(angle), math.Sin(angle)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// bearingToPan converts a source's angle relative to the listener's
// facing (radians, 0 = straight ahead, positive = to the listener's
// right) into a pan value, and its straight-line distance into a
// distance-attenuation gain.
func bearingToPan(listenerX, listenerY, listenerAngle, sourceX, sourceY float64) (pan, distance float64) {
	dx, dy := sourceX-listenerX, sourceY-listenerY
	distance = math.Hypot(dx, dy)
	bearing := math.Atan2(dx, dy) - listenerAngle
	for bearing > math.Pi {
		bearing -= 2 * math.Pi
	}
	for bearing < -math.Pi {
		bearing += 2 * math.Pi
	}
	return math.Sin(bearing), distance
}

// distanceGain maps a world-unit distance to a 0..1 attenuation; sounds
// beyond maxAudibleDist are inaudible rather than merely quiet, matching
// the clipping a real hardware/engine sound radius would impose.
const maxAudibleDist = 1600.0

func distanceGain(dist float64) float64 {
	if dist >= maxAudibleDist {
		return 0
	}
	return 1 - dist/maxAudibleDist
}
