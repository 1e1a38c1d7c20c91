package info

// SfxID names a sound effect for the sound-routing package (spec §6
// "Emitted to sound"). None means silent.
type SfxID int

const (
	SfxNone SfxID = iota
	SfxPistol
	SfxShotgun
	SfxPlasma
	SfxRocketLaunch
	SfxBarrelExplode
	SfxFireballExplode
	SfxPlayerPain
	SfxPlayerDeath
	SfxZombieSight
	SfxZombiePain
	SfxZombieDeath
	SfxZombieActive
	SfxImpSight
	SfxImpMelee
	SfxImpPain
	SfxImpDeath
	SfxSkullSight
	SfxSkullAttack
	SfxSkullPain
	SfxDoorOpen
	SfxDoorClose
	SfxPlatStart
	SfxPlatStop
	SfxSwitchOn
	SfxSwitchOff
	SfxTeleport
)

// SpriteID names a sprite set; the actual frame image lookup is an
// external collaborator (spec §6 "sprite frame lookup").
type SpriteID int

const (
	SprNone SpriteID = iota
	SprPlay                // player
	SprPoss                // zombieman
	SprTroo                // imp
	SprSkul                // lost soul
	SprBar1                // barrel
	SprBex                 // barrel explosion
	SprMisl                // rocket
	SprTfog                // teleport fog
	SprBlud                // blood
	SprPuff                // bullet puff
	SprTbal                // imp fireball
	SprTblx                // imp fireball explosion
)

// FullBright is bit 15 of a state's Frame field (spec §6 "Sprite frame
// encoding"): when set, the frame bypasses sector light diminish.
const FullBright = 1 << 15

// FrameIndex masks out the full-bright bit.
func FrameIndex(frame int) int { return frame &^ FullBright }

// IsFullBright reports whether a state's frame carries the full-bright bit.
func IsFullBright(frame int) bool { return frame&FullBright != 0 }
