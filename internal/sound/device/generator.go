// Package device is the gopxl/beep playback sink for the sound package:
// it drains sound.Queue and actually produces PCM, something the core
// explicitly never does (spec §5/§6 "does not synthesize or mix audio").
// There is no WAD sound-lump format in scope here, so each info.SfxID is
// rendered as a short procedural tone, the same oscillator/envelope
// technique the teacher uses for every one of its own sound effects.
package device

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/doomcore/info"
)

type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
	waveSaw
	waveNoise
)

// oscillator is a minimal periodic-wave beep.Streamer, the same shape as
// the teacher's own oscillator (audio/effects.go): a single LFO-style
// phase accumulator with no external synthesis library, since none of
// the pack's dependencies cover raw waveform generation.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     waveShape
	rate     beep.SampleRate
}

func newOscillator(freq float64, dur time.Duration, wave waveShape, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, duration: rate.N(dur), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (o.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release shape over a streamer, again
// following the teacher's envelope (audio/effects.go) rather than
// reaching for a DSP library that nothing in the pack provides.
type envelope struct {
	streamer                              beep.Streamer
	position, attack, release, total, sus int
}

func newEnvelope(s beep.Streamer, dur, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(dur)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}
	return &envelope{streamer: s, attack: att, release: rel, total: total, sus: sus}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		releaseStart := e.attack + e.sus
		if e.position >= releaseStart && e.release > 0 {
			remaining := e.total - e.position
			vol = float64(remaining) / float64(e.release)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// sfxProfile names the oscillator parameters for one info.SfxID. Every
// weapon/monster/door/switch sound in info.SfxID gets an entry so
// StartSfx never silently no-ops on an unmapped id.
type sfxProfile struct {
	freq   float64
	wave   waveShape
	dur    time.Duration
	attack time.Duration
}

var profiles = map[info.SfxID]sfxProfile{
	info.SfxPistol:         {1200, waveSaw, 90 * time.Millisecond, 2 * time.Millisecond},
	info.SfxShotgun:        {220, waveNoise, 160 * time.Millisecond, 2 * time.Millisecond},
	info.SfxPlasma:         {900, waveSquare, 70 * time.Millisecond, 2 * time.Millisecond},
	info.SfxRocketLaunch:   {140, waveSaw, 220 * time.Millisecond, 10 * time.Millisecond},
	info.SfxBarrelExplode:  {90, waveNoise, 380 * time.Millisecond, 4 * time.Millisecond},
	info.SfxFireballExplode: {110, waveNoise, 320 * time.Millisecond, 4 * time.Millisecond},
	info.SfxPlayerPain:     {480, waveSquare, 140 * time.Millisecond, 4 * time.Millisecond},
	info.SfxPlayerDeath:    {300, waveSaw, 500 * time.Millisecond, 10 * time.Millisecond},
	info.SfxZombieSight:    {360, waveSquare, 260 * time.Millisecond, 15 * time.Millisecond},
	info.SfxZombiePain:     {400, waveSquare, 140 * time.Millisecond, 4 * time.Millisecond},
	info.SfxZombieDeath:    {260, waveSaw, 380 * time.Millisecond, 8 * time.Millisecond},
	info.SfxZombieActive:   {320, waveSine, 120 * time.Millisecond, 10 * time.Millisecond},
	info.SfxImpSight:       {520, waveSquare, 260 * time.Millisecond, 15 * time.Millisecond},
	info.SfxImpMelee:       {640, waveSaw, 90 * time.Millisecond, 2 * time.Millisecond},
	info.SfxImpPain:        {560, waveSquare, 140 * time.Millisecond, 4 * time.Millisecond},
	info.SfxImpDeath:       {340, waveSaw, 380 * time.Millisecond, 8 * time.Millisecond},
	info.SfxSkullSight:     {760, waveSine, 200 * time.Millisecond, 10 * time.Millisecond},
	info.SfxSkullAttack:    {820, waveSquare, 110 * time.Millisecond, 2 * time.Millisecond},
	info.SfxSkullPain:      {700, waveSquare, 140 * time.Millisecond, 4 * time.Millisecond},
	info.SfxDoorOpen:       {180, waveSine, 420 * time.Millisecond, 30 * time.Millisecond},
	info.SfxDoorClose:      {150, waveSine, 420 * time.Millisecond, 30 * time.Millisecond},
	info.SfxPlatStart:      {200, waveSine, 300 * time.Millisecond, 20 * time.Millisecond},
	info.SfxPlatStop:       {170, waveSine, 200 * time.Millisecond, 10 * time.Millisecond},
	info.SfxSwitchOn:       {900, waveSquare, 60 * time.Millisecond, 1 * time.Millisecond},
	info.SfxSwitchOff:      {700, waveSquare, 60 * time.Millisecond, 1 * time.Millisecond},
	info.SfxTeleport:       {500, waveNoise, 450 * time.Millisecond, 20 * time.Millisecond},
}

// buildStreamer renders one SfxID into a finite beep.Streamer, or nil if
// the id has no profile (info.SfxNone, or an id added upstream without a
// matching entry above).
func buildStreamer(sfx info.SfxID, rate beep.SampleRate) beep.Streamer {
	p, ok := profiles[sfx]
	if !ok {
		return nil
	}
	osc := newOscillator(p.freq, p.dur, p.wave, rate)
	release := p.dur / 4
	return newEnvelope(osc, p.dur, p.attack, release, rate)
}
