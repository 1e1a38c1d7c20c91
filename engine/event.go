package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/doomcore/core"
)

// EventType names a trigger/sound-request event (spec §4.6 "Event
// queue/router" — switches, teleports, plat/door state changes, and sound
// emission all decouple producer thinkers from their consumers this way).
type EventType int

const (
	EventNone EventType = iota
	EventLineCrossed
	EventSwitchUsed
	EventDoorTrigger
	EventPlatTrigger
	EventFloorTrigger
	EventCeilingTrigger
	EventLightTrigger
	EventTeleport
	EventSoundRequest
	EventMobjRemoved
	EventMobjDamaged
)

// GameEvent is one queued occurrence. Payload shape depends on Type; Tic
// is the tic it was pushed on, used to reject stale events across a reset.
type GameEvent struct {
	Type    EventType
	Payload any
	Source  core.Entity
	Tic     uint64
}

const (
	eventQueueSize = 2048
	eventBufMask   = eventQueueSize - 1
)

// EventQueue is a lock-free MPSC ring buffer: any thinker can Push, only
// the orchestrator's tick loop calls Consume. Overflow silently drops the
// oldest unread event rather than blocking a producer.
type EventQueue struct {
	events    [eventQueueSize]GameEvent
	published [eventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue { return &EventQueue{} }

func (q *EventQueue) Push(ev GameEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & eventBufMask
			q.events[idx] = ev
			q.published[idx].Store(true)

			currentHead := q.head.Load()
			if nextTail-currentHead > eventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-eventQueueSize)
			}
			return
		}
	}
}

// Consume drains all pending events in FIFO order. Single-consumer only.
func (q *EventQueue) Consume() []GameEvent {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()
		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > eventQueueSize {
			maxAvailable = eventQueueSize
			currentHead = currentTail - eventQueueSize
		}

		result := make([]GameEvent, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & eventBufMask
			if !q.published[idx].Load() {
				break
			}
			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

func (q *EventQueue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > eventQueueSize {
		return eventQueueSize
	}
	return diff
}

// EventHandler lets a System receive routed events instead of scanning
// the whole queue itself.
type EventHandler interface {
	HandleEvent(w *World, ev GameEvent)
	EventTypes() []EventType
}

// EventRouter dispatches consumed events to registered handlers in
// registration order, once per tic, after the mobj and sector thinkers
// have run.
type EventRouter struct {
	handlers map[EventType][]EventHandler
	queue    *EventQueue
}

func NewEventRouter(queue *EventQueue) *EventRouter {
	return &EventRouter{handlers: make(map[EventType][]EventHandler), queue: queue}
}

func (r *EventRouter) Register(h EventHandler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// DispatchAll consumes all pending events and routes each to its handlers.
func (r *EventRouter) DispatchAll(w *World) int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(w, ev)
		}
	}
	return len(events)
}
