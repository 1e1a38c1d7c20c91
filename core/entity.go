// Package core holds the handful of types every other package needs to
// agree on without creating an import cycle: the entity handle and the
// panic-recovery goroutine launcher.
package core

// Entity is a weak handle into the simulation's mobj arena: the low 32
// bits are the arena slot index, the high 32 bits are that slot's
// generation counter. A stored Entity (Target, Tracer, Attacker — spec
// §3) is only valid if the arena slot's current generation still
// matches; otherwise the referenced mobj has been removed and reused,
// and the reference silently reads as "gone" rather than dangling.
type Entity uint64

// NoEntity is the zero value: no entity, never a valid handle.
const NoEntity Entity = 0

func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

func (e Entity) Index() uint32      { return uint32(e) }
func (e Entity) Generation() uint32 { return uint32(e >> 32) }

func (e Entity) Valid() bool { return e != NoEntity }
