package engine

import (
	"math/rand"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/geom"
	"github.com/lixenwraith/doomcore/mapdata"
)

// SpatialIndex is the mobj-by-blockmap-cell index package sim implements
// (MobjGrid). Defined here, rather than as a concrete World field of
// package sim's type, so engine has no import of sim — sim imports engine,
// not the other way around (spec §4.1 iter_mobjs_in_bbox lives on the
// concrete type; this is just enough surface for World to hold and pass
// one along).
type SpatialIndex interface {
	Add(e core.Entity, p geom.Vec2)
	Remove(e core.Entity, p geom.Vec2)
	Move(e core.Entity, oldP, newP geom.Vec2)
	ForEachInBBox(bbox geom.BBox, f func(core.Entity) bool)
}

// World owns every mobj's components, the event queue, the registered
// systems, and the loaded map — the single piece of state a tic operates
// against (spec §5 "World is owned by exactly one goroutine during a
// tic").
type World struct {
	mu     sync.RWMutex
	arena  *EntityArena
	Map    *mapdata.Map
	Events *EventQueue
	Status *StatusRegistry
	Grid   SpatialIndex

	// Rand is the single PRNG source for every dice-roll in the
	// simulation (painchance, light flicker, AI move selection). It is
	// seeded explicitly by NewWorld rather than from the clock so that
	// the same seed plus the same command sequence reproduces the same
	// run tic-for-tic (spec §5 determinism).
	Rand *rand.Rand

	// Component stores, explicitly typed — no reflection, matching the
	// teacher's WorldGeneric (engine/world_generic.go).
	Position   *Store[component.Position]
	Momentum   *Store[component.Momentum]
	Facing     *Store[component.Facing]
	Extent     *Store[component.Extent]
	SectorLink *Store[component.SectorLink]
	Anim       *Store[component.Anim]
	Info       *Store[component.Info]
	HealthC    *Store[component.Health]
	FlagsC     *Store[component.Flags]
	Refs       *Store[component.Refs]
	AIState    *Store[component.AI]
	PlayerC    *Store[component.Player]
	WeaponView *Store[component.PSprite]
	GunFlash   *Store[component.PSprite]

	allStores []AnyStore

	// systems split by tick-orchestrator phase (spec §4.8 steps 2 and 3);
	// each slice is kept sorted by Priority independently.
	mobjSystems   []System
	sectorSystems []System
	systems       []System // combined view of both phases, walked by InitSystems()
	updateMutex   sync.Mutex

	tic        atomic.Uint64
	removeMu   sync.Mutex
	pendingRem []core.Entity
}

func NewWorld(m *mapdata.Map) *World {
	return NewWorldSeeded(m, 1)
}

// NewWorldSeeded creates a World whose PRNG is seeded explicitly, for
// reproducible tests and demo playback.
func NewWorldSeeded(m *mapdata.Map, seed int64) *World {
	w := &World{
		arena:  NewEntityArena(),
		Map:    m,
		Events: NewEventQueue(),
		Status: NewStatusRegistry(),
		Rand:   rand.New(rand.NewSource(seed)),

		Position:   NewStore[component.Position](),
		Momentum:   NewStore[component.Momentum](),
		Facing:     NewStore[component.Facing](),
		Extent:     NewStore[component.Extent](),
		SectorLink: NewStore[component.SectorLink](),
		Anim:       NewStore[component.Anim](),
		Info:       NewStore[component.Info](),
		HealthC:    NewStore[component.Health](),
		FlagsC:     NewStore[component.Flags](),
		Refs:       NewStore[component.Refs](),
		AIState:    NewStore[component.AI](),
		PlayerC:    NewStore[component.Player](),
		WeaponView: NewStore[component.PSprite](),
		GunFlash:   NewStore[component.PSprite](),
	}

	w.allStores = []AnyStore{
		w.Position, w.Momentum, w.Facing, w.Extent, w.SectorLink,
		w.Anim, w.Info, w.HealthC, w.FlagsC, w.Refs, w.AIState,
		w.PlayerC, w.WeaponView, w.GunFlash,
	}

	return w
}

// SetGrid installs the mobj spatial index, called once at level load by
// package sim after building a MobjGrid over the loaded Map's Blockmap.
func (w *World) SetGrid(g SpatialIndex) { w.Grid = g }

// CreateEntity allocates a new entity handle without attaching components.
func (w *World) CreateEntity() core.Entity { return w.arena.Alloc() }

// DestroyEntity removes every component for e and frees its arena slot,
// bumping the generation so stale weak refs (Refs.Target etc.) stop
// resolving (spec §3 invariant on weak back-references).
func (w *World) DestroyEntity(e core.Entity) {
	if w.Grid != nil {
		if pos, ok := w.Position.Get(e); ok {
			w.Grid.Remove(e, geom.Vec2{X: pos.X, Y: pos.Y})
		}
	}
	for _, s := range w.allStores {
		s.Remove(e)
	}
	w.arena.Free(e)
}

// Alive reports whether e is still a live entity.
func (w *World) Alive(e core.Entity) bool { return w.arena.Alive(e) }

func sortByPriority(systems []System) {
	for i := 0; i < len(systems)-1; i++ {
		for j := 0; j < len(systems)-i-1; j++ {
			if systems[j].Priority() > systems[j+1].Priority() {
				systems[j], systems[j+1] = systems[j+1], systems[j]
			}
		}
	}
}

// AddMobjSystem registers a thinker run in tick-orchestrator step 2 (spec
// §4.8), e.g. AI/physics/player-weapon systems.
func (w *World) AddMobjSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.mobjSystems = append(w.mobjSystems, s)
	sortByPriority(w.mobjSystems)
	w.systems = append(w.systems, s)
}

// AddSectorSystem registers a thinker run in tick-orchestrator step 3
// (spec §4.8), e.g. door/plat/floor/ceiling/light/scroll.
func (w *World) AddSectorSystem(s System) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sectorSystems = append(w.sectorSystems, s)
	sortByPriority(w.sectorSystems)
	w.systems = append(w.systems, s)
}

// MobjSystems/SectorSystems return priority-ordered snapshots for the
// orchestrator to drive independently.
func (w *World) MobjSystems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.mobjSystems))
	copy(out, w.mobjSystems)
	return out
}

func (w *World) SectorSystems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.sectorSystems))
	copy(out, w.sectorSystems)
	return out
}

// InitSystems calls Init on every registered system (both phases).
func (w *World) InitSystems() {
	w.mu.RLock()
	all := make([]System, len(w.systems))
	copy(all, w.systems)
	w.mu.RUnlock()
	for _, s := range all {
		s.Init(w)
	}
}

// Tic returns the current level tic counter (spec §4.8 step 5).
func (w *World) Tic() uint64 { return w.tic.Load() }

func (w *World) advanceTic() uint64 { return w.tic.Add(1) }

// QueueRemoval defers a mobj's destruction to the end of the current tic
// (spec §4.8 step 6, "flush deferred removals") so a thinker removing
// itself mid-tic doesn't invalidate iteration over the store it's in.
func (w *World) QueueRemoval(e core.Entity) {
	w.removeMu.Lock()
	w.pendingRem = append(w.pendingRem, e)
	w.removeMu.Unlock()
}

// FlushRemovals destroys every entity queued via QueueRemoval since the
// last flush and returns how many were removed.
func (w *World) FlushRemovals() int {
	w.removeMu.Lock()
	pending := w.pendingRem
	w.pendingRem = nil
	w.removeMu.Unlock()

	for _, e := range pending {
		w.DestroyEntity(e)
	}
	return len(pending)
}

// RunSafe executes fn while holding the world's update lock, the same
// single-writer guarantee the orchestrator relies on between tics.
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

func (w *World) Lock()         { w.updateMutex.Lock() }
func (w *World) TryLock() bool { return w.updateMutex.TryLock() }
func (w *World) Unlock()       { w.updateMutex.Unlock() }

// PushEvent queues an event for the next dispatch pass (spec §4.6).
func (w *World) PushEvent(t EventType, payload any, source core.Entity, tic uint64) {
	w.Events.Push(GameEvent{Type: t, Payload: payload, Source: source, Tic: tic})
}
