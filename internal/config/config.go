// Package config loads the tunables spec.md leaves as "engine still
// needs" but out of scope for its own CLI/config surface (an explicit
// Non-goal): tic rate, gravity, friction, painchance overrides, the gib
// damage threshold, and sector-mover speeds. It follows the teacher's
// own config idiom (toml/decode.go's reflection-based decoder, used the
// same way genetic/persistence/manager.go loads a TOML file into a
// struct) rather than stdlib encoding/json or flag.
package config

import (
	"os"
	"strconv"

	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/info"
	"github.com/lixenwraith/doomcore/sector"
	"github.com/lixenwraith/doomcore/sim"
	"github.com/lixenwraith/doomcore/toml"
)

// Tunables is the level-load-time parameter set. Every field defaults to
// the value baked into its owning package so a level with no config file
// behaves exactly like one that never heard of internal/config.
type Tunables struct {
	TicRate int `toml:"tic_rate"`

	Gravity       float64 `toml:"gravity"`
	FloatBobStep  float64 `toml:"float_bob_step"`
	GroundFriction float64 `toml:"ground_friction"`

	GibThreshold int `toml:"gib_threshold"`

	DoorSpeed    float64 `toml:"door_speed"`
	PlatSpeed    float64 `toml:"plat_speed"`
	FloorSpeed   float64 `toml:"floor_speed"`
	CeilingSpeed float64 `toml:"ceiling_speed"`

	// PainChance overrides a MapObjectInfo's 0-256 painchance (spec §4.1
	// MapObjectInfo "painchance (0-256)"), keyed by the Doomednum (thing
	// placement number) a level editor would show for that mobj type.
	// TOML tables are always string-keyed (toml/decode.go "only
	// map[string]T is supported"), so keys are decimal doomednum strings
	// ("3004" for a former human, matching the map format itself).
	// Absent keys keep their info.MobjInfos default.
	PainChance map[string]int `toml:"pain_chance"`
}

// Default returns the teacher-derived defaults already baked into sim
// and sector as of package init, i.e. what the engine runs with when no
// TOML file is loaded at all.
func Default() *Tunables {
	return &Tunables{
		TicRate:        35,
		Gravity:        1.0,
		FloatBobStep:   4.0,
		GroundFriction: 0.90625,
		GibThreshold:   1000,
		DoorSpeed:      2.0,
		PlatSpeed:      4.0,
		FloorSpeed:     1.0,
		CeilingSpeed:   1.0,
	}
}

// Load reads and decodes a TOML tunables file, following
// genetic/persistence/manager.go's Load (os.ReadFile + toml.Unmarshal).
// Fields absent from the file keep the Default() value in t.
func Load(path string) (*Tunables, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Apply pushes every tunable into the owning package's overridable
// state. Called once at level load, before the first tic, per
// SPEC_FULL.md's Configuration section ("loaded once at level-load time
// alongside map lumps").
func (t *Tunables) Apply() {
	sim.SetGravity(geom.FromFloat(t.Gravity))
	sim.SetFloatBobStep(geom.FromFloat(t.FloatBobStep))
	sim.SetGroundFriction(geom.FromFloat(t.GroundFriction))
	sim.SetGibThreshold(t.GibThreshold)

	sector.SetDoorSpeed(geom.FromFloat(t.DoorSpeed))
	sector.SetPlatSpeed(geom.FromFloat(t.PlatSpeed))
	sector.SetFloorSpeed(geom.FromFloat(t.FloorSpeed))
	sector.SetCeilingSpeed(geom.FromFloat(t.CeilingSpeed))

	for doomedNumStr, chance := range t.PainChance {
		doomedNum, err := strconv.Atoi(doomedNumStr)
		if err != nil {
			continue
		}
		for i := range info.MobjInfos {
			if info.MobjInfos[i].Doomednum == doomedNum {
				info.MobjInfos[i].PainChance = chance
			}
		}
	}
}
