package info

import "github.com/lixenwraith/doomcore/geom"

// MobjType indexes the MobjInfo table and is also the value stored on a
// spawned mobj to look its profile back up (spec §3 MapObject.mobjType).
type MobjType int

const (
	MT_PLAYER MobjType = iota
	MT_POSSESSED
	MT_TROOP
	MT_SKULL
	MT_BARREL
	MT_ROCKET
	MT_TROOPSHOT
	MT_PLASMA
	MT_TFOG
	MT_BLOOD
	MT_PUFF

	numMobjTypes
)

// MobjInfo is the immutable per-type profile (spec §3 "MapObjectInfo"),
// field order mirrors the original doomednum..raisestate layout.
type MobjInfo struct {
	Doomednum    int // thing placement number, 0 = not map-placeable
	SpawnState   StateID
	SpawnHealth  int
	SeeState     StateID
	SeeSound     SfxID
	ReactionTime int
	AttackSound  SfxID
	PainState    StateID
	PainChance   int
	PainSound    SfxID
	MeleeState   StateID
	MissileState StateID
	DeathState   StateID
	XDeathState  StateID
	DeathSound   SfxID
	Speed        geom.Fixed
	Radius       geom.Fixed
	Height       geom.Fixed
	Mass         int
	Damage       int
	ActiveSound  SfxID
	Flags        Flag
	RaiseState   StateID
}

// MobjInfos is the immutable table every mobj's MobjType indexes, ported
// from a representative subset of the original mobjinfo_t array (see
// SPEC_FULL.md "Supplemented features" for the selection rationale).
var MobjInfos = [numMobjTypes]MobjInfo{
	MT_PLAYER: {
		Doomednum: 1, SpawnState: S_PLAY, SpawnHealth: 100,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 0,
		AttackSound: SfxNone, PainState: S_PLAY_PAIN, PainChance: 255,
		PainSound: SfxPlayerPain, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_PLAY_DIE1, XDeathState: S_PLAY_XDIE1, DeathSound: SfxPlayerDeath,
		Speed: 0, Radius: geom.FromInt(16), Height: geom.FromInt(56),
		Mass: 100, Damage: 0, ActiveSound: SfxNone,
		Flags: Solid | Shootable | DropOff | Pickup, RaiseState: S_NULL,
	},
	MT_POSSESSED: {
		Doomednum: 3004, SpawnState: S_POSS_STND, SpawnHealth: 20,
		SeeState: S_POSS_RUN1, SeeSound: SfxZombieSight, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_POSS_PAIN, PainChance: 200,
		PainSound: SfxZombiePain, MeleeState: S_NULL, MissileState: S_POSS_ATK1,
		DeathState: S_POSS_DIE1, XDeathState: S_POSS_XDIE1, DeathSound: SfxZombieDeath,
		Speed: geom.FromInt(8), Radius: geom.FromInt(20), Height: geom.FromInt(56),
		Mass: 100, Damage: 0, ActiveSound: SfxZombieActive,
		Flags: Solid | Shootable | CountKill, RaiseState: S_POSS_RAISE1,
	},
	MT_TROOP: {
		Doomednum: 3001, SpawnState: S_TROO_STND, SpawnHealth: 60,
		SeeState: S_TROO_RUN1, SeeSound: SfxImpSight, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_TROO_PAIN, PainChance: 200,
		PainSound: SfxImpPain, MeleeState: S_TROO_MELEE1, MissileState: S_TROO_ATK1,
		DeathState: S_TROO_DIE1, XDeathState: S_TROO_XDIE1, DeathSound: SfxImpDeath,
		Speed: geom.FromInt(8), Radius: geom.FromInt(20), Height: geom.FromInt(56),
		Mass: 100, Damage: 3, ActiveSound: SfxNone,
		Flags: Solid | Shootable | CountKill, RaiseState: S_TROO_RAISE1,
	},
	MT_SKULL: {
		Doomednum: 3006, SpawnState: S_SKULL_STND, SpawnHealth: 100,
		SeeState: S_SKULL_RUN1, SeeSound: SfxSkullSight, ReactionTime: 8,
		AttackSound: SfxSkullAttack, PainState: S_SKULL_PAIN, PainChance: 256,
		PainSound: SfxSkullPain, MeleeState: S_NULL, MissileState: S_SKULL_ATK1,
		DeathState: S_SKULL_DIE1, XDeathState: S_NULL, DeathSound: SfxNone,
		Speed: geom.FromInt(8), Radius: geom.FromInt(16), Height: geom.FromInt(56),
		Mass: 50, Damage: 3, ActiveSound: SfxNone,
		Flags: Solid | Shootable | CountKill | Float | NoGravity | SkullFly,
		RaiseState: S_NULL,
	},
	MT_BARREL: {
		Doomednum: 2035, SpawnState: S_BAR1, SpawnHealth: 20,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_BEXP, XDeathState: S_NULL, DeathSound: SfxBarrelExplode,
		Speed: 0, Radius: geom.FromInt(10), Height: geom.FromInt(42),
		Mass: 100, Damage: 0, ActiveSound: SfxNone,
		Flags: Solid | Shootable | NoBlood, RaiseState: S_NULL,
	},
	MT_ROCKET: {
		Doomednum: 0, SpawnState: S_ROCKET, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxRocketLaunch, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_EXPLODE1, XDeathState: S_NULL, DeathSound: SfxFireballExplode,
		Speed: geom.FromInt(20), Radius: geom.FromInt(11), Height: geom.FromInt(8),
		Mass: 100, Damage: 20, ActiveSound: SfxNone,
		Flags: Missile | NoGravity | DropOff | NoBlockMap, RaiseState: S_NULL,
	},
	MT_TROOPSHOT: {
		Doomednum: 0, SpawnState: S_TBALL1, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 8,
		AttackSound: SfxImpMelee, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_TBALLX1, XDeathState: S_NULL, DeathSound: SfxNone,
		Speed: geom.FromInt(10), Radius: geom.FromInt(6), Height: geom.FromInt(8),
		Mass: 100, Damage: 3, ActiveSound: SfxNone,
		Flags: Missile | NoGravity | DropOff | NoBlockMap, RaiseState: S_NULL,
	},
	MT_PLASMA: {
		Doomednum: 0, SpawnState: S_TBALL1, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxPlasma, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_TBALLX1, XDeathState: S_NULL, DeathSound: SfxFireballExplode,
		Speed: geom.FromInt(25), Radius: geom.FromInt(13), Height: geom.FromInt(8),
		Mass: 100, Damage: 5, ActiveSound: SfxNone,
		Flags: Missile | NoGravity | DropOff | NoBlockMap, RaiseState: S_NULL,
	},
	MT_TFOG: {
		Doomednum: 0, SpawnState: S_TFOG1, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_NULL, XDeathState: S_NULL, DeathSound: SfxNone,
		Speed: 0, Radius: 0, Height: 0,
		Mass: 100, Damage: 0, ActiveSound: SfxNone,
		Flags: NoBlockMap | NoGravity, RaiseState: S_NULL,
	},
	MT_BLOOD: {
		Doomednum: 0, SpawnState: S_BLOOD1, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_NULL, XDeathState: S_NULL, DeathSound: SfxNone,
		Speed: 0, Radius: 0, Height: 0,
		Mass: 100, Damage: 0, ActiveSound: SfxNone,
		Flags: NoBlockMap, RaiseState: S_NULL,
	},
	MT_PUFF: {
		Doomednum: 0, SpawnState: S_PUFF1, SpawnHealth: 1000,
		SeeState: S_NULL, SeeSound: SfxNone, ReactionTime: 8,
		AttackSound: SfxNone, PainState: S_NULL, PainChance: 0,
		PainSound: SfxNone, MeleeState: S_NULL, MissileState: S_NULL,
		DeathState: S_NULL, XDeathState: S_NULL, DeathSound: SfxNone,
		Speed: 0, Radius: 0, Height: 0,
		Mass: 100, Damage: 0, ActiveSound: SfxNone,
		Flags: NoBlockMap | NoGravity, RaiseState: S_NULL,
	},
}

// ByDoomednum finds the MobjType a map THING lump entry spawns, used by
// the level-load thing-spawn path (spec §6 "Thing").
func ByDoomednum(num int) (MobjType, bool) {
	for t, inf := range MobjInfos {
		if inf.Doomednum == num && num != 0 {
			return MobjType(t), true
		}
	}
	return 0, false
}
