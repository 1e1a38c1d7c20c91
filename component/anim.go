package component

import "github.com/lixenwraith/doomcore/info"

// Anim is a mobj's current position in the state machine (spec §4.2
// "SetMobjState"): State names the current frame, TicsLeft counts down to
// the next automatic advance (-1 = never advances on its own).
type Anim struct {
	State    info.StateID
	TicsLeft int
}

// Info pins a mobj to its immutable profile row (spec §3 MapObject.mobjType).
type Info struct {
	Type info.MobjType
}

// Health tracks current hit points and the one-shot gib/xdeath threshold
// check (spec §4.2 "damage_mobj"): zero or negative once dead; a killing
// blow leaving HP below -GibThreshold selects XDeathState over DeathState.
type Health struct {
	HP int
}

// Flags mirrors info.MobjInfo.Flags at spawn but is mutable per-mobj
// (e.g. Shadow toggled by a powerup, Solid cleared on death) — spec §3
// MapObject.flags.
type Flags struct {
	Bits info.Flag
}
