// Package sector implements spec §4.6's sector action thinkers — doors,
// plats, floor/ceiling movers, light effects, scrollers — and the line
// special dispatch (walk/use triggers, switches, teleporters) that spawns
// them. It sits above package sim (TeleportMove, Damage, SetState) and
// below nothing: package sim never imports this package, so a thinker
// can freely use every sim primitive without any import cycle.
package sector

import "github.com/lixenwraith/doomcore/engine"

// Family classifies which of a sector's two single-thinker slots
// (spec §4.6 "A sector may host only one door/floor/ceiling thinker at a
// time") a Thinker occupies. Light and scroll thinkers are unbounded —
// a sector can blink and have a door raising at once.
type Family int

const (
	FamilyCeiling Family = iota // doors, ceiling crushers
	FamilyFloor                 // plats, floor movers
	FamilyLight
	FamilyScroll
)

// Handle is an opaque thinker reference, the concrete value stored in
// mapdata.Sector's ActiveCeiling/ActiveFloor back-reference fields
// (spec §3 invariant (f)).
type Handle uint64

// Thinker is one running sector action (spec §3 "Thinker: any object
// that receives a per-tic update"). Tick returns false once the thinker
// has finished and should be removed (a door that closed for good, a
// one-shot plat cycle); Light and Scroll thinkers run forever and always
// return true, while the switch-revert thinker (also FamilyScroll)
// finishes once it has flipped its texture back.
type Thinker interface {
	Family() Family
	SectorIdx() int
	Tick(w *engine.World) bool
}
