package player

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/sim"
)

// useRange is how far ahead of the player a "use" press reaches for a
// switch/door line (spec §4.6 "switch/use ... variants").
const useRange = 64 << 16

// maxLookDir clamps the pitch the render view matrix is given (spec §4.7
// "(angle, lookdir)"); autoaim itself stays pitch-free per spec §4.3.
var maxLookDir = geom.FromDegrees(45)

// Cmd is the already-decoded per-tic player command spec §4.8 step 1
// ("read player command buffer") consumes — input event capture itself is
// a Non-goal (spec §1), so this is the boundary an external collaborator
// fills in before the tic runs.
type Cmd struct {
	Forward geom.Fixed          // +forward / -backward, in map units per tic
	Side    geom.Fixed          // +right-strafe / -left-strafe
	Turn    geom.Angle          // added to facing this tic
	Pitch   geom.Angle          // added to lookdir this tic, clamped to maxLookDir
	Fire    bool                // trigger held
	Use     bool                // use/open line special
	Weapon  component.WeaponType // non-negative requests a weapon switch
}

// ApplyCmd implements spec §4.8 step 1's consuming half: turns the
// player's facing, composes forward/strafe momentum in that facing's
// local frame, latches the fire trigger for A_WeaponReady/A_ReFire to
// read, and queues a weapon switch (ignored if the target slot has no
// ammo left and isn't the fist).
func ApplyCmd(w *engine.World, e core.Entity, cmd Cmd) {
	if cmd.Turn != 0 {
		w.Facing.Mutate(e, func(f *component.Facing) { f.Angle += cmd.Turn })
	}

	facing, ok := w.Facing.Get(e)
	if !ok {
		return
	}
	if cmd.Forward != 0 || cmd.Side != 0 {
		fx, fy := facing.Angle.ToVertex()
		sx, sy := (facing.Angle + geom.Angle90).ToVertex()
		w.Momentum.Mutate(e, func(m *component.Momentum) {
			m.X += fx.Mul(cmd.Forward) + sx.Mul(cmd.Side)
			m.Y += fy.Mul(cmd.Forward) + sy.Mul(cmd.Side)
		})
	}

	w.PlayerC.Mutate(e, func(p *component.Player) { p.AttackDown = cmd.Fire })

	if cmd.Pitch != 0 {
		w.PlayerC.Mutate(e, func(p *component.Player) { p.LookDir = clampLookDir(p.LookDir + cmd.Pitch) })
	}

	if cmd.Use {
		applyUse(w, e, facing)
	}

	if cmd.Weapon == component.WeaponNone {
		return
	}
	p, ok := w.PlayerC.Get(e)
	if !ok || cmd.Weapon == p.ReadyWeapon {
		return
	}
	wi, known := Weapons[cmd.Weapon]
	if !known {
		return // no state chain in this pack's representative subset
	}
	if wi.AmmoUse > 0 && p.Ammo[wi.Ammo] < wi.AmmoUse {
		return
	}
	w.PlayerC.Mutate(e, func(pp *component.Player) { pp.PendingWeapon = cmd.Weapon })
}

// applyUse pushes spec §4.6's "use" line trigger for the first specialed
// line within useRange of the player's facing, mirroring the shape of
// fireHitscan's aim-and-trace rather than reusing it: a use check needs
// the nearest specialed line regardless of whether it blocks sight, not
// the nearest shootable mobj.
func applyUse(w *engine.World, e core.Entity, facing component.Facing) {
	pos, ok := w.Position.Get(e)
	if !ok {
		return
	}
	fx, fy := facing.Angle.ToVertex()
	start := geom.Vec2{X: pos.X, Y: pos.Y}
	end := geom.Vec2{X: pos.X + fx.Mul(useRange), Y: pos.Y + fy.Mul(useRange)}

	sim.PathTrace(w, start, end, sim.TraceLines, func(ic sim.Intercept) bool {
		ld := &w.Map.Linedefs[ic.Line]
		if ld.Special != 0 {
			w.PushEvent(engine.EventSwitchUsed, ic.Line, e, w.Tic())
		}
		return false // the nearest line along the ray always stops a use check
	})
}

// clampLookDir keeps pitch within [-maxLookDir, maxLookDir], comparing as
// signed BAM (Angle.SignedInt32) since pitch never approaches a full turn.
func clampLookDir(a geom.Angle) geom.Angle {
	signed := a.SignedInt32()
	max := maxLookDir.SignedInt32()
	if signed > max {
		return maxLookDir
	}
	if signed < -max {
		return geom.Angle(-max)
	}
	return a
}
