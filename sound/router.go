package sound

import (
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/info"
)

// Router is an engine.EventHandler for EventSoundRequest: registered with
// the Orchestrator the same way sector.TriggerHandler is, it turns each
// request into a positional Action on an unbounded Queue, decoupling
// thinkers (which only know "play this sfx from this entity", spec §6)
// from the audio thread's actual request shape.
type Router struct {
	queue *Queue
}

func NewRouter(queue *Queue) *Router { return &Router{queue: queue} }

// EventTypes implements engine.EventHandler.
func (r *Router) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventSoundRequest}
}

// HandleEvent implements engine.EventHandler: pushes a StartSfx Action
// positioned at the source mobj if one exists (spec §6 "uid is the
// mobj's stable identity"); sector-originated sounds (doors, lifts)
// carry core.NoEntity and play non-positionally, since the triggering
// line/sector special has no single point to emit from.
func (r *Router) HandleEvent(w *engine.World, ev engine.GameEvent) {
	sfx, ok := ev.Payload.(info.SfxID)
	if !ok || sfx == info.SfxNone {
		return
	}
	a := Action{Kind: ActionStartSfx, UID: ev.Source, Sfx: sfx}
	if ev.Source != core.NoEntity {
		if pos, ok := w.Position.Get(ev.Source); ok {
			a.X, a.Y = pos.X.ToFloat(), pos.Y.ToFloat()
		}
		if facing, ok := w.Facing.Get(ev.Source); ok {
			a.Angle = float64(facing.Angle.SignedInt32())
		}
	}
	r.queue.Push(a)
}

// UpdateListener pushes the player's current position/facing as the
// audio thread's stereo-panning reference point (spec §6 "UpdateListener
// { x, y, angle }"), called once per tic by whatever owns the player
// entity.
func (r *Router) UpdateListener(w *engine.World, player core.Entity) {
	pos, ok := w.Position.Get(player)
	if !ok {
		return
	}
	facing, _ := w.Facing.Get(player)
	r.queue.Push(Action{
		Kind: ActionUpdateListener,
		X:    pos.X.ToFloat(), Y: pos.Y.ToFloat(),
		Angle: float64(facing.Angle.SignedInt32()),
	})
}

// StartMusic pushes a StartMusic request (spec §6 "StartMusic(id, loop)").
func (r *Router) StartMusic(musicID int, loop bool) {
	r.queue.Push(Action{Kind: ActionStartMusic, MusicID: musicID, Loop: loop})
}

// StopSfx pushes a StopSfx request for a given source's stable uid (spec
// §6 "StopSfx { uid }"), e.g. when a looping sector sound's thinker ends.
func (r *Router) StopSfx(uid core.Entity) {
	r.queue.Push(Action{Kind: ActionStopSfx, UID: uid})
}
