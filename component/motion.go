// Package component holds the plain per-mobj data records the simulation
// operates on (spec §3 "MapObject"). Every type here is a value type with
// no behavior — thinkers in package sim/ai/player read and mutate them
// through engine.Store[T]; nothing in this package depends on engine, so
// it stays a safe import for every other package in the module.
package component

import "github.com/lixenwraith/doomcore/geom"

// Position is a mobj's map-space location (spec §3 MapObject.{x,y,z}).
type Position struct {
	X, Y, Z geom.Fixed
}

// Momentum is a mobj's per-tic velocity (spec §3 MapObject.{momx,momy,momz}).
type Momentum struct {
	X, Y, Z geom.Fixed
}

// Facing is the direction a mobj looks and moves toward (spec §3 MapObject.angle).
type Facing struct {
	Angle geom.Angle
}

// Extent is a mobj's collision size, copied from info.MobjInfo at spawn
// time (spec §3 MapObject.{radius,height}); a handful of specials (e.g.
// skull-fly knockback) never change it, so it is its own component rather
// than re-read from the immutable table every tic.
type Extent struct {
	Radius geom.Fixed
	Height geom.Fixed
}

// SectorLink caches which sector a mobj currently occupies, maintained by
// sim.Spawn, sim.TryMove and sim.TeleportMove so floor/ceiling thinkers and z-movement
// don't re-run PointInSubsector every tic.
type SectorLink struct {
	Sector int
}
