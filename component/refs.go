package component

import "github.com/lixenwraith/doomcore/core"

// Refs holds a mobj's weak back-references (spec §3 MapObject.{target,
// tracer,attacker}). Each is only meaningful if engine.EntityArena.Alive
// still reports true for it — a dead, recycled slot silently reads as
// "no target" rather than pointing at the wrong mobj.
type Refs struct {
	Target   core.Entity // who AI is chasing/attacking
	Tracer   core.Entity // homing-missile lock, e.g. revenant-style tracking
	Attacker core.Entity // last mobj that damaged this one (for pain/retaliation)
}

// AI is the chase/look state a monster thinker needs across tics (spec
// §4.4 "A_Chase", "A_Look"): ReactionTime gates how soon a freshly-seen
// target can be engaged, Threshold keeps a monster locked onto Target for
// a minimum duration, MoveDir/MoveCount drive the wander/pursuit walk.
type AI struct {
	ReactionTime int
	Threshold    int
	MoveDir      int // 0-7 compass direction, -1 = no direction
	MoveCount    int
}
