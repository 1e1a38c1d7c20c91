// Package player implements the PlayerWeapon arm of the action-dispatch
// table spec §4.5 names: the held-weapon sprite state machine
// (ready/down/up/fire/flash), ammo consumption, hitscan/missile firing,
// and the per-tic player command (spec §4.8 step 1, "read player command
// buffer" — input capture itself is a Non-goal, so Cmd is the already-
// decoded interface this package consumes).
package player

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/info"
)

// WeaponInfo is the immutable per-weapon state-chain/ammo profile (spec
// §4.5 "weapon slots"), the PlayerWeapon counterpart of info.MobjInfo.
// Fist/Pistol/Shotgun/Chaingun/Plasma/Rocket are populated; BFG/Chainsaw
// are valid WeaponType values (spec §3 completeness) but have no state
// chain in this pack's representative subset, so switching to one is a
// no-op in ApplyCmd.
type WeaponInfo struct {
	UpState, DownState, ReadyState, AttackState, FlashState info.StateID
	Ammo                                                     component.AmmoType
	AmmoUse                                                  int
}

var Weapons = map[component.WeaponType]WeaponInfo{
	component.WeaponFist: {
		UpState: info.S_PUNCHUP, DownState: info.S_PUNCHDOWN,
		ReadyState: info.S_PUNCH, AttackState: info.S_PUNCH1,
		FlashState: info.S_NULL, Ammo: component.AmmoClip, AmmoUse: 0,
	},
	component.WeaponPistol: {
		UpState: info.S_PISTOLUP, DownState: info.S_PISTOLDOWN,
		ReadyState: info.S_PISTOL, AttackState: info.S_PISTOL1,
		FlashState: info.S_PISTOLFLASH, Ammo: component.AmmoClip, AmmoUse: 1,
	},
	component.WeaponShotgun: {
		UpState: info.S_SGUNUP, DownState: info.S_SGUNDOWN,
		ReadyState: info.S_SGUN, AttackState: info.S_SGUN1,
		FlashState: info.S_SGUNFLASH1, Ammo: component.AmmoShell, AmmoUse: 1,
	},
	component.WeaponPlasma: {
		UpState: info.S_PLASMAUP, DownState: info.S_PLASMADOWN,
		ReadyState: info.S_PLASMA, AttackState: info.S_PLASMA1,
		FlashState: info.S_PLASMAFLASH, Ammo: component.AmmoCell, AmmoUse: 1,
	},
	component.WeaponChaingun: {
		UpState: info.S_CHAINUP, DownState: info.S_CHAINDOWN,
		ReadyState: info.S_CHAIN, AttackState: info.S_CHAIN1,
		FlashState: info.S_CHAINFLASH1, Ammo: component.AmmoClip, AmmoUse: 1,
	},
	component.WeaponRocket: {
		UpState: info.S_MISSILEUP, DownState: info.S_MISSILEDOWN,
		ReadyState: info.S_MISSILE, AttackState: info.S_MISSILE1,
		FlashState: info.S_MISSILEFLASH1, Ammo: component.AmmoMissile, AmmoUse: 1,
	},
}
