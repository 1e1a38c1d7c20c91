package engine

import (
	"testing"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/mapdata"
)

// orderRecorder appends its label to a shared log every Update, letting
// the test assert the spec §4.8 phase ordering directly.
type orderRecorder struct {
	SystemBase
	label string
	log   *[]string
}

func (r *orderRecorder) Update(w *World) { *r.log = append(*r.log, r.label) }

func TestOrchestratorTicRunsPhasesInSpecOrder(t *testing.T) {
	w := NewWorld(&mapdata.Map{})
	var log []string

	w.AddMobjSystem(&orderRecorder{SystemBase: NewSystemBase(10), label: "mobj-a", log: &log})
	w.AddMobjSystem(&orderRecorder{SystemBase: NewSystemBase(5), label: "mobj-b", log: &log})
	w.AddSectorSystem(&orderRecorder{SystemBase: NewSystemBase(0), label: "sector", log: &log})

	inputRan := false
	o := NewOrchestrator(w, 0, func(w *World) { inputRan = true })

	handlerRan := false
	o.RegisterEventHandler(&funcHandler{
		types: []EventType{EventSwitchUsed},
		fn:    func(w *World, ev GameEvent) { handlerRan = true },
	})
	w.PushEvent(EventSwitchUsed, nil, NoEntityForTest, 0)

	o.Tic()

	if !inputRan {
		t.Fatalf("step 1 (read input) did not run")
	}
	want := []string{"mobj-b", "mobj-a", "sector"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
	if !handlerRan {
		t.Fatalf("step 4 (trigger dispatch) did not invoke the registered handler")
	}
	if w.Tic() != 1 {
		t.Fatalf("step 5: Tic() = %d, want 1", w.Tic())
	}
}

func TestOrchestratorFlushesDeferredRemovals(t *testing.T) {
	w := NewWorld(&mapdata.Map{})
	e := w.CreateEntity()
	w.Position.Add(e, component.Position{})

	o := NewOrchestrator(w, 0, nil)
	w.QueueRemoval(e)

	if !w.Alive(e) {
		t.Fatalf("entity should still be alive before the tic's flush step")
	}
	o.Tic()
	if w.Alive(e) {
		t.Fatalf("entity should be removed after step 6 flush")
	}
	if w.Position.Has(e) {
		t.Fatalf("removed entity's components should be gone")
	}
}

type funcHandler struct {
	types []EventType
	fn    func(w *World, ev GameEvent)
}

func (h *funcHandler) EventTypes() []EventType { return h.types }
func (h *funcHandler) HandleEvent(w *World, ev GameEvent) { h.fn(w, ev) }

const NoEntityForTest = 0
