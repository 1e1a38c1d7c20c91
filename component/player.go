package component

import (
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
)

// WeaponType names one of the player's weapon slots (spec §4.5 "Player &
// weapons"). WeaponNone is only ever a PendingWeapon sentinel meaning "no
// switch queued".
type WeaponType int

const (
	WeaponNone WeaponType = iota - 1
	WeaponFist
	WeaponPistol
	WeaponShotgun
	WeaponChaingun
	WeaponRocket
	WeaponPlasma
	WeaponBFG
	WeaponChainsaw

	NumWeapons = WeaponChainsaw + 1
)

// AmmoType indexes a player's ammo pools.
type AmmoType int

const (
	AmmoClip AmmoType = iota
	AmmoShell
	AmmoCell
	AmmoMissile

	NumAmmoTypes
)

// Player is the per-player extension of the common mobj record (spec
// §4.5): health/armor/ammo bookkeeping plus which weapon is equipped.
type Player struct {
	Armor         int
	ReadyWeapon   WeaponType
	PendingWeapon WeaponType
	Ammo          [NumAmmoTypes]int
	MaxAmmo       [NumAmmoTypes]int
	Refire        bool
	AttackDown    bool // held trigger, gates ActionReFire (spec §4.5 edge case)
	ExtraLight    int  // transient light boost (e.g. muzzle flash) added to sector light

	ViewZ    geom.Fixed // eye height above floor, bobs with walking (spec §4.5, §4.7)
	LookDir  geom.Angle // pitch, consumed by render for the vertical view offset
	BobPhase geom.Angle // internal accumulator driving ViewZ's walk bob
}

// ViewHeight is a player's eye height above the sector floor at rest
// (spec §4.5 "view-z"), before the walk-bob offset is added.
const ViewHeight geom.Fixed = 41 << 16

// MaxBobAmplitude caps how far ViewZ swings above/below ViewHeight, a
// simplification of the original's full momentum-scaled bob curve down to
// a single fixed amplitude (see DESIGN.md).
const MaxBobAmplitude geom.Fixed = 16 << 16

// PSprite is one of the two player weapon-view sprite layers (gun body,
// muzzle flash), each its own little state machine (spec §4.5
// "PlayerSprite" / A_GunFlash vs the weapon's own state chain).
type PSprite struct {
	State            info.StateID
	TicsLeft         int
	SpriteX, SpriteY geom.Fixed
}
