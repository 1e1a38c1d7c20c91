package engine

import "testing"

func TestEventQueuePushConsumeFIFO(t *testing.T) {
	q := NewEventQueue()
	q.Push(GameEvent{Type: EventSwitchUsed, Tic: 1})
	q.Push(GameEvent{Type: EventDoorTrigger, Tic: 2})

	if got := q.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	events := q.Consume()
	if len(events) != 2 {
		t.Fatalf("Consume() returned %d events, want 2", len(events))
	}
	if events[0].Type != EventSwitchUsed || events[1].Type != EventDoorTrigger {
		t.Fatalf("events out of FIFO order: %+v", events)
	}
	if q.Len() != 0 {
		t.Fatalf("queue should be empty after Consume")
	}
}

type countingHandler struct {
	types []EventType
	count int
}

func (h *countingHandler) EventTypes() []EventType { return h.types }
func (h *countingHandler) HandleEvent(w *World, ev GameEvent) {
	h.count++
}

func TestEventRouterDispatchesToRegisteredHandlers(t *testing.T) {
	q := NewEventQueue()
	router := NewEventRouter(q)

	h := &countingHandler{types: []EventType{EventTeleport}}
	router.Register(h)

	q.Push(GameEvent{Type: EventTeleport})
	q.Push(GameEvent{Type: EventSoundRequest}) // no handler registered

	n := router.DispatchAll(nil)
	if n != 2 {
		t.Fatalf("DispatchAll returned %d, want 2", n)
	}
	if h.count != 1 {
		t.Fatalf("handler invoked %d times, want 1", h.count)
	}
}
