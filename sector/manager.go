package sector

import (
	"sync"

	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
)

// OffsetTable holds the runtime scroll accumulation for scrolling lines
// (spec §4.6 "scroll"). Kept here rather than on mapdata.Linedef/Sidedef,
// which carry no scroll-offset fields.
type OffsetTable struct {
	mu      sync.Mutex
	offsets map[int]geom.Vec2
}

func newOffsetTable() *OffsetTable { return &OffsetTable{offsets: make(map[int]geom.Vec2)} }

// Get returns the accumulated scroll offset for a linedef, (0,0) if none.
func (t *OffsetTable) Get(line int) geom.Vec2 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offsets[line]
}

func (t *OffsetTable) add(line int, delta geom.Vec2) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offsets[line] = t.offsets[line].Add(delta)
}

// Manager owns every live sector thinker (spec §4.6's thinker families)
// and enforces the one-ceiling/one-floor-thinker-per-sector invariant by
// writing Handle back into mapdata.Sector.ActiveCeiling/ActiveFloor.
type Manager struct {
	mu       sync.Mutex
	next     uint64
	thinkers map[Handle]Thinker

	Offsets *OffsetTable
}

func NewManager() *Manager {
	return &Manager{thinkers: make(map[Handle]Thinker), Offsets: newOffsetTable()}
}

// Spawn installs t, refusing a Ceiling/Floor thinker if that sector slot
// is already occupied (spec §4.6 "a second door attempt in the same
// sector" — spec §5's Trigger-mismatch category: "silently ignored").
func (m *Manager) Spawn(w *engine.World, t Thinker) (Handle, bool) {
	if sec := t.SectorIdx(); sec >= 0 {
		s := &w.Map.Sectors[sec]
		switch t.Family() {
		case FamilyCeiling:
			if s.ActiveCeiling != 0 {
				return 0, false
			}
		case FamilyFloor:
			if s.ActiveFloor != 0 {
				return 0, false
			}
		}
	}

	m.mu.Lock()
	m.next++
	h := Handle(m.next)
	m.thinkers[h] = t
	m.mu.Unlock()

	if sec := t.SectorIdx(); sec >= 0 {
		s := &w.Map.Sectors[sec]
		switch t.Family() {
		case FamilyCeiling:
			s.ActiveCeiling = uint64(h)
		case FamilyFloor:
			s.ActiveFloor = uint64(h)
		}
	}
	return h, true
}

// Lookup returns the thinker currently occupying sectorIdx's ceiling or
// floor slot, for re-triggering (spec §4.6 "re-triggering reverses
// direction or extends wait").
func (m *Manager) Lookup(w *engine.World, sectorIdx int, fam Family) (Thinker, bool) {
	s := &w.Map.Sectors[sectorIdx]
	var h Handle
	switch fam {
	case FamilyCeiling:
		h = Handle(s.ActiveCeiling)
	case FamilyFloor:
		h = Handle(s.ActiveFloor)
	}
	if h == 0 {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.thinkers[h]
	return t, ok
}

func (m *Manager) remove(w *engine.World, h Handle, t Thinker) {
	if sec := t.SectorIdx(); sec >= 0 {
		s := &w.Map.Sectors[sec]
		switch t.Family() {
		case FamilyCeiling:
			s.ActiveCeiling = 0
		case FamilyFloor:
			s.ActiveFloor = 0
		}
	}
	m.mu.Lock()
	delete(m.thinkers, h)
	m.mu.Unlock()
}

// Update ticks every live thinker once, removing any that finish (spec
// §4.8 step 3 "run sector action thinkers").
func (m *Manager) Update(w *engine.World) {
	m.mu.Lock()
	snapshot := make(map[Handle]Thinker, len(m.thinkers))
	for h, t := range m.thinkers {
		snapshot[h] = t
	}
	m.mu.Unlock()

	for h, t := range snapshot {
		if !t.Tick(w) {
			m.remove(w, h, t)
		}
	}
}

// Count reports how many thinkers are currently live, for tests/status.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.thinkers)
}

// System adapts Manager to engine.System for registration via
// World.AddSectorSystem (spec §4.8 step 3).
type System struct {
	engine.SystemBase
	Mgr *Manager
}

func NewSystem(mgr *Manager) *System {
	return &System{SystemBase: engine.NewSystemBase(30), Mgr: mgr}
}

func (s *System) Update(w *engine.World) { s.Mgr.Update(w) }
