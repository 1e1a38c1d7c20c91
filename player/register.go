package player

import (
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sim"
)

// Register installs every PlayerWeapon-kind callback into sim's
// process-wide dispatch table (spec §4.5), the PlayerWeapon counterpart
// of ai.Register. Dispatch registration is process-wide, not tied to any
// one *engine.World, so — like ai.Register — this takes no arguments.
func Register() {
	sim.RegisterPlayerWeapon(info.ActionWeaponReady, WeaponReady)
	sim.RegisterPlayerWeapon(info.ActionLower, Lower)
	sim.RegisterPlayerWeapon(info.ActionRaise, Raise)
	sim.RegisterPlayerWeapon(info.ActionPunch, Punch)
	sim.RegisterPlayerWeapon(info.ActionFirePistol, FirePistol)
	sim.RegisterPlayerWeapon(info.ActionFireShotgun, FireShotgun)
	sim.RegisterPlayerWeapon(info.ActionFireCGun, FireCGun)
	sim.RegisterPlayerWeapon(info.ActionFirePlasma, FirePlasma)
	sim.RegisterPlayerWeapon(info.ActionFireMissile, FireMissile)
	sim.RegisterPlayerWeapon(info.ActionLight0, Light0)
	sim.RegisterPlayerWeapon(info.ActionLight1, Light1)
	sim.RegisterPlayerWeapon(info.ActionLight2, Light2)
	sim.RegisterPlayerWeapon(info.ActionGunFlash, GunFlash)
	sim.RegisterPlayerWeapon(info.ActionReFire, ReFire)
}

// RegisterSystems installs the per-World mobj-phase systems a level needs
// on top of sim.Register: the weapon-sprite state chain and the view-z
// walk bob (spec §4.5), mirroring sim.Register's shape for this package.
func RegisterSystems(w *engine.World) {
	w.AddMobjSystem(NewWeaponSystem())
	w.AddMobjSystem(NewViewSystem())
}
