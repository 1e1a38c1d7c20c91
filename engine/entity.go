package engine

import (
	"sync"

	"github.com/lixenwraith/doomcore/core"
)

// slot is one arena position: Alive and Generation track whether a handle
// taken before a Free/Alloc cycle still resolves (spec §3 weak back-refs).
type slot struct {
	generation uint32
	alive      bool
}

// EntityArena allocates and recycles entity handles. A freed index is
// reused on the next Alloc with its generation incremented, so any Entity
// handle captured before the Free (a Target, Tracer, or Attacker weak
// ref) fails core.Entity.Generation comparison and is treated as gone.
type EntityArena struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
}

func NewEntityArena() *EntityArena {
	return &EntityArena{slots: make([]slot, 0, 1024)}
}

func (a *EntityArena) Alloc() core.Entity {
	a.mu.Lock()
	defer a.mu.Unlock()

	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx].alive = true
		return core.NewEntity(idx, a.slots[idx].generation)
	}

	idx := uint32(len(a.slots))
	a.slots = append(a.slots, slot{generation: 1, alive: true})
	return core.NewEntity(idx, 1)
}

func (a *EntityArena) Free(e core.Entity) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := e.Index()
	if int(idx) >= len(a.slots) || !a.slots[idx].alive || a.slots[idx].generation != e.Generation() {
		return
	}
	a.slots[idx].alive = false
	a.slots[idx].generation++
	a.free = append(a.free, idx)
}

// Alive reports whether e still names a live entity — the check every
// weak-ref dereference (Target, Tracer, Attacker) must perform before use.
func (a *EntityArena) Alive(e core.Entity) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	idx := e.Index()
	if int(idx) >= len(a.slots) {
		return false
	}
	return a.slots[idx].alive && a.slots[idx].generation == e.Generation()
}
