package sim

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// Spawn implements spec §4.2 spawn(type, x, y, z): allocates an entity,
// attaches every base component from the type's immutable MobjInfo row,
// links it into its spawn subsector's sector (spec §3 invariant (a)) and
// the mobj spatial grid, and runs SetState into the type's spawn state.
func Spawn(w *engine.World, t info.MobjType, x, y, z geom.Fixed) core.Entity {
	inf := &info.MobjInfos[t]
	e := w.CreateEntity()

	w.Info.Add(e, component.Info{Type: t})
	w.Position.Add(e, component.Position{X: x, Y: y, Z: z})
	w.Momentum.Add(e, component.Momentum{})
	w.Facing.Add(e, component.Facing{})
	w.Extent.Add(e, component.Extent{Radius: inf.Radius, Height: inf.Height})
	w.HealthC.Add(e, component.Health{HP: inf.SpawnHealth})
	w.FlagsC.Add(e, component.Flags{Bits: inf.Flags})
	w.Refs.Add(e, component.Refs{})
	w.AIState.Add(e, component.AI{ReactionTime: inf.ReactionTime, MoveDir: -1})
	w.Anim.Add(e, component.Anim{})

	p := geom.Vec2{X: x, Y: y}
	sub := w.Map.PointInSubsector(p)
	w.SectorLink.Add(e, component.SectorLink{Sector: w.Map.Subsectors[sub].Sector})

	if w.Grid != nil && !inf.Flags.Has(info.NoBlockMap) {
		w.Grid.Add(e, p)
	}

	SetState(w, e, inf.SpawnState)
	return e
}

// SpawnPlayer spawns MT_PLAYER and attaches the player-only components
// spec §4.5 adds on top of the common mobj record.
func SpawnPlayer(w *engine.World, x, y, z geom.Fixed, angle geom.Angle) core.Entity {
	e := Spawn(w, info.MT_PLAYER, x, y, z)
	w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = angle })
	w.PlayerC.Add(e, component.Player{
		ReadyWeapon:   component.WeaponPistol,
		PendingWeapon: component.WeaponNone,
		MaxAmmo:       [component.NumAmmoTypes]int{200, 50, 300, 50},
		Ammo:          [component.NumAmmoTypes]int{50, 0, 0, 0},
		ViewZ:         component.ViewHeight,
	})
	w.WeaponView.Add(e, component.PSprite{State: info.S_PISTOL})
	w.GunFlash.Add(e, component.PSprite{State: info.S_NULL})
	return e
}

// SpawnThings walks the loaded map's things list (spec §6 "things list:
// spawn directives: x, y, angle, doomed-number, flags") and spawns every
// entry whose doomed-number matches a MobjInfo, using SpawnPlayer for the
// first player-start thing and Spawn for everything else, each dropped
// onto its containing sector's floor. It returns the spawned player
// entity, or core.NoEntity if the map has no player start — the minimum
// level bring-up every entry point (cmd/doomrun, cmd/doombench,
// integration tests) would otherwise have to duplicate.
func SpawnThings(w *engine.World) core.Entity {
	player := core.NoEntity
	for _, t := range w.Map.Things {
		mt, ok := mobjTypeByDoomedNum(t.DoomedNum)
		if !ok {
			continue
		}
		sub := w.Map.PointInSubsector(geom.Vec2{X: t.X, Y: t.Y})
		z := w.Map.Sectors[w.Map.Subsectors[sub].Sector].FloorHeight

		if mt == info.MT_PLAYER {
			if player != core.NoEntity {
				continue // only the first player start is used
			}
			player = SpawnPlayer(w, t.X, t.Y, z, t.Angle)
			continue
		}
		e := Spawn(w, mt, t.X, t.Y, z)
		w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = t.Angle })
	}
	return player
}

func mobjTypeByDoomedNum(doomedNum int) (info.MobjType, bool) {
	for i := range info.MobjInfos {
		if info.MobjInfos[i].Doomednum == doomedNum && info.MobjInfos[i].Doomednum != 0 {
			return info.MobjType(i), true
		}
	}
	return info.MobjType(0), false
}

// Remove implements spec §4.2 remove(mobj): deferred to end-of-tic so a
// thinker removing another mobj (or itself) never invalidates an
// in-progress iteration over the store it lives in (spec §3 invariant
// (e): thinker-list removal is idempotent).
func Remove(w *engine.World, e core.Entity) {
	w.QueueRemoval(e)
}
