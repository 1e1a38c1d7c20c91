// Package sound implements spec §5/§6's audio boundary: the core never
// synthesizes or mixes (both explicit Non-goals); it only emits sound
// requests onto an unbounded SPSC channel that "may drop or preempt
// sounds but never blocks the simulation" (spec §5). Package sound is the
// request side; internal/sound/device is the playback sink that actually
// talks to an audio backend.
package sound

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/info"
)

// ActionKind discriminates the four request shapes spec §6 names
// ("Emitted to sound: StartSfx{...}, StopSfx{...}, UpdateListener{...},
// StartMusic(...)").
type ActionKind int

const (
	ActionStartSfx ActionKind = iota
	ActionStopSfx
	ActionUpdateListener
	ActionStartMusic
)

// Action is one queued sound request. Fields not relevant to Kind are
// left zero; a tagged struct mirrors the teacher's GameEvent shape
// (engine/event.go) rather than an interface-per-kind, since every
// request here is small and fixed-shape.
type Action struct {
	Kind ActionKind

	// StartSfx / StopSfx: UID is the mobj's stable identity so a second
	// StartSfx from the same source replaces rather than layers onto the
	// first (spec §6 "uid is the mobj's stable identity so repeated
	// sounds from the same source replace the prior one").
	UID core.Entity
	Sfx info.SfxID
	X, Y, Angle float64 // world position/facing at emission time, float64 since audio has no determinism requirement (spec §5)

	// StartMusic
	MusicID int
	Loop    bool
}
