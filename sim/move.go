package sim

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// maxMove is the per-axis momentum clamp spec §4.2 xy_movement cites
// ("clamped to per-step maxmove"); a step with an axis above half of it is
// taken in two half-steps, so try_move never validates more than half of
// maxMove per axis in one shot.
const maxMove = 30 << 16

// gravityStep is the per-tic downward momentum added to a falling,
// non-FLOAT mobj (spec §4.2 z_movement). A var, not a const, so
// internal/config can override it from level tunables at load time.
var gravityStep geom.Fixed = 1 << 16

// floatBobStep is the per-tic z-momentum nudge a FLOAT mobj gets toward
// its target's altitude (spec §4.2 "floating mobjs bob toward
// line-of-sight altitude").
var floatBobStep geom.Fixed = 4 << 16

// groundFriction is the fraction of horizontal momentum retained per tic
// while resting on the floor (spec §4.2 "Friction applies on the ground").
var groundFriction = geom.FromFloat(0.90625)

// SetGravity, SetFloatBobStep and SetGroundFriction let internal/config
// override the movement tunables once at level load; unexported package
// vars otherwise keep their teacher-derived defaults above.
func SetGravity(g geom.Fixed)       { gravityStep = g }
func SetFloatBobStep(g geom.Fixed)  { floatBobStep = g }
func SetGroundFriction(f geom.Fixed) { groundFriction = f }

// XYMovement implements spec §4.2 xy_movement: integrates momentum in at
// most two sub-steps (so no step exceeds maxMove), calling try_move for
// each. A rejected missile explodes; a rejected non-missile slides along
// the blocking line, retaining only the tangential momentum component.
func XYMovement(w *engine.World, e core.Entity) {
	mom, ok := w.Momentum.Get(e)
	if !ok || (mom.X == 0 && mom.Y == 0) {
		return
	}
	flags, _ := w.FlagsC.Get(e)
	mom.X = maxFixed(-maxMove, minFixed(mom.X, maxMove))
	mom.Y = maxFixed(-maxMove, minFixed(mom.Y, maxMove))

	steps := 1
	if mom.X.Abs() > maxMove/2 || mom.Y.Abs() > maxMove/2 {
		steps = 2
	}
	stepX, stepY := mom.X.Div(geom.FromInt(steps)), mom.Y.Div(geom.FromInt(steps))

	for i := 0; i < steps; i++ {
		pos, ok := w.Position.Get(e)
		if !ok {
			return
		}
		cur := geom.Vec2{X: pos.X, Y: pos.Y}
		newP := cur.Add(geom.Vec2{X: stepX, Y: stepY})

		pc := TryMove(w, e, newP)
		if pc.Result == MoveOK {
			continue
		}

		if flags.Bits.Has(info.Missile) {
			explodeMissile(w, e)
			return
		}
		if flags.Bits.Has(info.SkullFly) {
			skullStop(w, e)
			return
		}

		if pc.Result == MoveBlockedLine {
			tx, ty := slideTangent(w, pc.BlockLine, stepX, stepY)
			stepX, stepY = tx, ty
			TryMove(w, e, cur.Add(geom.Vec2{X: tx, Y: ty}))
			n := geom.FromInt(steps)
			w.Momentum.Mutate(e, func(m *component.Momentum) { m.X, m.Y = tx.Mul(n), ty.Mul(n) })
			continue // any remaining sub-step keeps sliding along the wall
		}
		w.Momentum.Mutate(e, func(m *component.Momentum) { m.X, m.Y = 0, 0 })
		return
	}

	applyGroundFriction(w, e)
}

// slideTangent projects the rejected step's momentum onto the blocking
// line's direction, so a mobj grazes along a wall instead of stopping dead.
func slideTangent(w *engine.World, lineIdx int, mx, my geom.Fixed) (geom.Fixed, geom.Fixed) {
	ld := &w.Map.Linedefs[lineIdx]
	dir := w.Map.LinedefLine(ld).Delta().Normalize()
	mom := geom.Vec2{X: mx, Y: my}
	t := mom.Dot(dir)
	tangent := dir.Scale(t)
	return tangent.X, tangent.Y
}

func applyGroundFriction(w *engine.World, e core.Entity) {
	pos, ok := w.Position.Get(e)
	link, lok := w.SectorLink.Get(e)
	if !ok || !lok {
		return
	}
	floor := w.Map.Sectors[link.Sector].FloorHeight
	if pos.Z > floor {
		return // airborne: no ground friction
	}
	w.Momentum.Mutate(e, func(m *component.Momentum) {
		m.X = m.X.Mul(groundFriction)
		m.Y = m.Y.Mul(groundFriction)
	})
}

// skullStop implements the Lost Soul's skull-attack contact behavior
// (spec §8 scenario 4): unlike a missile, a SkullFly mobj does not
// detonate on hitting a solid, it just stops and drops back out of its
// attack charge into seestate to resume normal chasing.
func skullStop(w *engine.World, e core.Entity) {
	inf, ok := w.Info.Get(e)
	if !ok {
		return
	}
	mi := &info.MobjInfos[inf.Type]
	w.Momentum.Mutate(e, func(m *component.Momentum) { *m = component.Momentum{} })
	SetState(w, e, mi.SeeState)
}

func explodeMissile(w *engine.World, e core.Entity) {
	inf, ok := w.Info.Get(e)
	if !ok {
		return
	}
	mi := &info.MobjInfos[inf.Type]
	w.Momentum.Mutate(e, func(m *component.Momentum) { *m = component.Momentum{} })
	w.FlagsC.Mutate(e, func(f *component.Flags) { f.Bits &^= info.Missile })
	SetState(w, e, mi.DeathState)
}

// ZMovement implements spec §4.2 z_movement: gravity for grounded mobjs,
// altitude bobbing for FLOAT mobjs, floor/ceiling contact clamping, and
// missile detonation on ceiling contact.
func ZMovement(w *engine.World, e core.Entity) {
	pos, ok := w.Position.Get(e)
	if !ok {
		return
	}
	mom, _ := w.Momentum.Get(e)
	flags, _ := w.FlagsC.Get(e)
	ext, _ := w.Extent.Get(e)
	link, _ := w.SectorLink.Get(e)
	sector := &w.Map.Sectors[link.Sector]

	if !flags.Bits.Has(info.NoGravity) {
		if flags.Bits.Has(info.Float) {
			if refs, ok := w.Refs.Get(e); ok && refs.Target.Valid() && w.Alive(refs.Target) {
				if tp, ok := w.Position.Get(refs.Target); ok {
					switch {
					case tp.Z > pos.Z:
						mom.Z += floatBobStep
					case tp.Z < pos.Z:
						mom.Z -= floatBobStep
					}
				}
			}
		} else {
			mom.Z -= gravityStep
		}
	}

	newZ := pos.Z + mom.Z

	if newZ <= sector.FloorHeight {
		newZ = sector.FloorHeight
		if mom.Z < 0 {
			mom.Z = 0
		}
	}
	if newZ+ext.Height >= sector.CeilingHeight {
		if mom.Z > 0 && flags.Bits.Has(info.Missile) {
			explodeMissile(w, e)
			return
		}
		newZ = sector.CeilingHeight - ext.Height
		if mom.Z > 0 {
			mom.Z = 0
		}
	}

	w.Position.Mutate(e, func(p *component.Position) { p.Z = newZ })
	w.Momentum.Mutate(e, func(m *component.Momentum) { m.Z = mom.Z })
}

// TeleportMove implements spec §4.2 p_teleport_move / §4.6 "Teleporters":
// atomically relocates e to dest, on the destination sector's floor and
// facing destAngle, bypassing try_move entirely: neither the path nor the
// destination is checked for blocking lines or mobjs. Fog spawning and sounds are the caller's responsibility
// (package sector's teleport line special), since that is the only place
// with both endpoints in hand at once.
func TeleportMove(w *engine.World, e core.Entity, dest geom.Vec2, destAngle geom.Angle) bool {
	subIdx := w.Map.PointInSubsector(dest)
	destSector := &w.Map.Sectors[w.Map.Subsectors[subIdx].Sector]

	pos, ok := w.Position.Get(e)
	if !ok {
		return false
	}
	flags, _ := w.FlagsC.Get(e)

	oldXY := geom.Vec2{X: pos.X, Y: pos.Y}
	if w.Grid != nil && !flags.Bits.Has(info.NoBlockMap) {
		w.Grid.Move(e, oldXY, dest)
	}

	w.Position.Mutate(e, func(p *component.Position) {
		p.X, p.Y = dest.X, dest.Y
		p.Z = destSector.FloorHeight
	})
	w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = destAngle })
	w.Momentum.Mutate(e, func(m *component.Momentum) { *m = component.Momentum{} })
	w.SectorLink.Mutate(e, func(sl *component.SectorLink) { sl.Sector = w.Map.Subsectors[subIdx].Sector })
	return true
}
