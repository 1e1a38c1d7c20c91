package player

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// weaponRange and meleeRange bound hitscan/melee autoaim the same way
// ai's attack actions bound theirs (ai/look.go), scaled for the player's
// longer-ranged weapons.
const (
	weaponRange = geom.Fixed(2048 << 16)
	meleeRange  = geom.Fixed(64 << 16)
)

// lowerStep and raiseStep are the per-tic sprite-Y travel speeds for the
// weapon-switch animation; loweredY is how far down "fully lowered" sits.
const (
	lowerStep = geom.Fixed(6 << 16)
	raiseStep = geom.Fixed(6 << 16)
	loweredY  = geom.Fixed(96 << 16)
)

func weaponInfo(w *engine.World, e core.Entity) (WeaponInfo, component.WeaponType, bool) {
	p, ok := w.PlayerC.Get(e)
	if !ok {
		return WeaponInfo{}, component.WeaponNone, false
	}
	wi, ok := Weapons[p.ReadyWeapon]
	return wi, p.ReadyWeapon, ok
}

// consumeAmmo implements spec §4.5's ammo gate: a weapon that needs ammo
// it doesn't have fails to fire (caller still lets the sprite animate,
// the empty "dry fire" look classic Doom also shows).
func consumeAmmo(w *engine.World, e core.Entity, wt component.WeaponType) bool {
	wi, ok := Weapons[wt]
	if !ok || wi.AmmoUse == 0 {
		return true
	}
	p, ok := w.PlayerC.Get(e)
	if !ok || p.Ammo[wi.Ammo] < wi.AmmoUse {
		return false
	}
	w.PlayerC.Mutate(e, func(pp *component.Player) { pp.Ammo[wi.Ammo] -= wi.AmmoUse })
	return true
}

// WeaponReady implements spec §4.5 A_WeaponReady: while idle in the
// weapon's ready state, starts a pending weapon switch or fires on a held
// trigger.
func WeaponReady(w *engine.World, e core.Entity, _ info.StateID) {
	p, ok := w.PlayerC.Get(e)
	if !ok {
		return
	}
	if p.PendingWeapon != component.WeaponNone {
		wi, _, ok := weaponInfo(w, e)
		if ok {
			SetWeaponState(w, e, wi.DownState)
		}
		return
	}
	if p.AttackDown {
		wi, _, ok := weaponInfo(w, e)
		if ok {
			SetWeaponState(w, e, wi.AttackState)
		}
	}
}

// Lower implements spec §4.5's weapon-switch down phase: slides the
// weapon sprite out of view, then swaps ReadyWeapon to PendingWeapon and
// starts raising it.
func Lower(w *engine.World, e core.Entity, _ info.StateID) {
	psp, ok := w.WeaponView.Get(e)
	if !ok {
		return
	}
	if psp.SpriteY < loweredY {
		w.WeaponView.Mutate(e, func(p *component.PSprite) { p.SpriteY += lowerStep })
		return
	}

	p, ok := w.PlayerC.Get(e)
	if !ok || p.PendingWeapon == component.WeaponNone {
		return // stays fully lowered (e.g. player is dead)
	}
	next := p.PendingWeapon
	w.PlayerC.Mutate(e, func(pp *component.Player) {
		pp.ReadyWeapon = next
		pp.PendingWeapon = component.WeaponNone
	})
	if wi, ok := Weapons[next]; ok {
		SetWeaponState(w, e, wi.UpState)
	}
}

// Raise implements spec §4.5's weapon-switch up phase: slides the new
// weapon sprite back into view; the state table's own NextState carries
// it into the ready state once the chain's tics run out.
func Raise(w *engine.World, e core.Entity, _ info.StateID) {
	psp, ok := w.WeaponView.Get(e)
	if !ok {
		return
	}
	y := psp.SpriteY - raiseStep
	if y < 0 {
		y = 0
	}
	w.WeaponView.Mutate(e, func(p *component.PSprite) { p.SpriteY = y })
}

// Punch implements spec §4.5 A_Punch: a short-range melee swing using the
// same autoaim cone a hitscan uses.
func Punch(w *engine.World, e core.Entity, _ info.StateID) {
	target, ang, found := sim.Autoaim(w, e, meleeRange)
	if !found {
		return
	}
	w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = ang })
	dmg := (w.Rand.Intn(10) + 1) * 2
	sim.Damage(w, target, e, e, dmg)
}

// fireHitscan implements the shared shape of spec §4.5
// A_FirePistol/A_FireShotgun/A_FireCGun: consume ammo, roll shots pellets
// each doing dmg damage against whatever autoaim finds, then trigger the
// muzzle flash.
func fireHitscan(w *engine.World, e core.Entity, wt component.WeaponType, sfx info.SfxID, shots int, dmg func() int) {
	if !consumeAmmo(w, e, wt) {
		w.PlayerC.Mutate(e, func(p *component.Player) { p.Refire = false })
		return
	}
	w.PlayerC.Mutate(e, func(p *component.Player) { p.Refire = true })
	w.PushEvent(engine.EventSoundRequest, sfx, e, w.Tic())
	for i := 0; i < shots; i++ {
		target, ang, found := sim.Autoaim(w, e, weaponRange)
		if !found {
			continue
		}
		w.Facing.Mutate(e, func(f *component.Facing) { f.Angle = ang })
		sim.Damage(w, target, e, e, dmg())
	}
	GunFlash(w, e, 0)
}

// FirePistol implements spec §4.5 A_FirePistol.
func FirePistol(w *engine.World, e core.Entity, _ info.StateID) {
	fireHitscan(w, e, component.WeaponPistol, info.SfxPistol, 1, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// FireShotgun implements spec §4.5 A_FireShotgun (seven-pellet spread).
func FireShotgun(w *engine.World, e core.Entity, _ info.StateID) {
	fireHitscan(w, e, component.WeaponShotgun, info.SfxShotgun, 7, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// FireCGun implements spec §4.5 A_FireCGun (one round per call; the state
// chain loops the calls across tics on the weapons that have one).
func FireCGun(w *engine.World, e core.Entity, _ info.StateID) {
	fireHitscan(w, e, component.WeaponChaingun, info.SfxPistol, 1, func() int { return (w.Rand.Intn(5) + 1) * 3 })
}

// launchPlayerMissile implements the shared shape of spec §4.5
// A_FirePlasma/A_FireMissile: consume ammo, spawn a projectile mobj aimed
// at whatever autoaim finds (or straight ahead if nothing is in the
// cone), the player counterpart of ai's launchMissile.
func launchPlayerMissile(w *engine.World, e core.Entity, wt component.WeaponType, sfx info.SfxID, t info.MobjType) {
	if !consumeAmmo(w, e, wt) {
		w.PlayerC.Mutate(e, func(p *component.Player) { p.Refire = false })
		return
	}
	w.PlayerC.Mutate(e, func(p *component.Player) { p.Refire = true })
	w.PushEvent(engine.EventSoundRequest, sfx, e, w.Tic())

	pos, ok := w.Position.Get(e)
	if !ok {
		return
	}
	ext, _ := w.Extent.Get(e)
	facing, _ := w.Facing.Get(e)
	ang := facing.Angle

	if _, aimAng, found := sim.Autoaim(w, e, weaponRange); found {
		ang = aimAng
	}

	mi := &info.MobjInfos[t]
	spawnZ := pos.Z + ext.Height/2 + geom.FromInt(8)
	m := sim.Spawn(w, t, pos.X, pos.Y, spawnZ)

	dx, dy := ang.ToVertex()
	w.Facing.Mutate(m, func(f *component.Facing) { f.Angle = ang })
	w.Momentum.Mutate(m, func(mm *component.Momentum) {
		mm.X, mm.Y = dx.Mul(mi.Speed), dy.Mul(mi.Speed)
	})
	w.Refs.Mutate(m, func(r *component.Refs) { r.Target = e })
	GunFlash(w, e, 0)
}

// FirePlasma implements spec §4.5 A_FirePlasma.
func FirePlasma(w *engine.World, e core.Entity, _ info.StateID) {
	launchPlayerMissile(w, e, component.WeaponPlasma, info.SfxPlasma, info.MT_PLASMA)
}

// FireMissile implements spec §4.5 A_FireMissile (rocket launcher).
func FireMissile(w *engine.World, e core.Entity, _ info.StateID) {
	launchPlayerMissile(w, e, component.WeaponRocket, info.SfxRocketLaunch, info.MT_ROCKET)
}

// GunFlash implements spec §4.5 A_GunFlash: starts the muzzle-flash
// overlay sprite running; the flash state's own action (A_Light1/A_Light2)
// sets ExtraLight once it ticks.
func GunFlash(w *engine.World, e core.Entity, _ info.StateID) {
	wi, _, ok := weaponInfo(w, e)
	if !ok {
		return
	}
	SetFlashState(w, e, wi.FlashState)
}

func setExtraLight(w *engine.World, e core.Entity, amount int) {
	w.PlayerC.Mutate(e, func(p *component.Player) { p.ExtraLight = amount })
}

// Light0 implements spec §4.5 A_Light0 (clears the muzzle-flash boost).
func Light0(w *engine.World, e core.Entity, _ info.StateID) { setExtraLight(w, e, 0) }

// Light1 implements spec §4.5 A_Light1 (the usual muzzle-flash boost).
func Light1(w *engine.World, e core.Entity, _ info.StateID) { setExtraLight(w, e, 1) }

// Light2 implements spec §4.5 A_Light2 (the plasma/BFG's brighter flash).
func Light2(w *engine.World, e core.Entity, _ info.StateID) { setExtraLight(w, e, 2) }

// ReFire implements spec §4.5 A_ReFire: while the trigger is still held
// and the weapon is still within its refire window, loops back into the
// attack state instead of returning to ready.
func ReFire(w *engine.World, e core.Entity, _ info.StateID) {
	p, ok := w.PlayerC.Get(e)
	if !ok {
		return
	}
	wi, _, weaponOK := weaponInfo(w, e)
	if !weaponOK {
		return
	}
	if p.AttackDown && p.Refire {
		SetWeaponState(w, e, wi.AttackState)
		return
	}
	SetWeaponState(w, e, wi.ReadyState)
}
