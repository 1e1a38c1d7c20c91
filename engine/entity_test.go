package engine

import "testing"

func TestEntityArenaReusesGenerationSafely(t *testing.T) {
	a := NewEntityArena()

	e1 := a.Alloc()
	if !a.Alive(e1) {
		t.Fatalf("freshly allocated entity should be alive")
	}

	a.Free(e1)
	if a.Alive(e1) {
		t.Fatalf("freed entity should no longer be alive")
	}

	e2 := a.Alloc()
	if e2.Index() != e1.Index() {
		t.Fatalf("expected slot reuse, got different index %d vs %d", e2.Index(), e1.Index())
	}
	if e2.Generation() == e1.Generation() {
		t.Fatalf("expected generation bump on reuse, got same generation %d", e2.Generation())
	}

	// The stale handle must never resolve to the new occupant.
	if a.Alive(e1) {
		t.Fatalf("stale handle e1 resolved as alive after slot reuse")
	}
	if !a.Alive(e2) {
		t.Fatalf("new handle e2 should be alive")
	}
}

func TestEntityArenaAllocDistinctIndices(t *testing.T) {
	a := NewEntityArena()
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		e := a.Alloc()
		if seen[e.Index()] {
			t.Fatalf("duplicate index %d allocated without a Free", e.Index())
		}
		seen[e.Index()] = true
	}
}
