package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/doomcore/core"
)

// Orchestrator drives the World at a fixed tick rate, executing the exact
// six-step sequence spec §4.8 mandates: read input, mobj thinkers, sector
// thinkers, triggers, advance tic, flush deferred removals. Tic itself is
// exported and safe to call directly (no goroutine, no wall clock) so
// tests can step the simulation deterministically.
type Orchestrator struct {
	world        *World
	tickInterval time.Duration
	router       *EventRouter
	readInput    func(w *World)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool

	statTics      *atomic.Int64
	statEvents    *atomic.Int64
	statEntities  *atomic.Int64
	statRemovals  *atomic.Int64
}

// NewOrchestrator creates a scheduler for world, ticking every interval.
// readInput may be nil (no external input source, e.g. demo playback
// supplies commands some other way); it runs as step 1 of every tic.
func NewOrchestrator(world *World, interval time.Duration, readInput func(w *World)) *Orchestrator {
	return &Orchestrator{
		world:        world,
		tickInterval: interval,
		router:       NewEventRouter(world.Events),
		readInput:    readInput,
		stopChan:     make(chan struct{}),

		statTics:     world.Status.Ints.Get("orchestrator.tics"),
		statEvents:   world.Status.Ints.Get("orchestrator.events_dispatched"),
		statEntities: world.Status.Ints.Get("orchestrator.entity_count"),
		statRemovals: world.Status.Ints.Get("orchestrator.removals"),
	}
}

// RegisterEventHandler adds a trigger/sound-request handler, must be
// called before Start (or before any manual Tic call that should see it).
func (o *Orchestrator) RegisterEventHandler(h EventHandler) {
	o.router.Register(h)
}

// Start runs the fixed-tick loop on its own goroutine until Stop.
func (o *Orchestrator) Start() {
	if !o.running.CompareAndSwap(false, true) {
		return
	}
	o.wg.Add(1)
	core.Go(o.loop)
}

// Stop halts the tick loop and waits for it to exit.
func (o *Orchestrator) Stop() {
	o.stopOnce.Do(func() {
		if o.running.CompareAndSwap(true, false) {
			close(o.stopChan)
			o.wg.Wait()
		}
	})
}

func (o *Orchestrator) loop() {
	defer o.wg.Done()

	ticker := time.NewTicker(o.tickInterval)
	defer ticker.Stop()

	deadline := time.Now().Add(o.tickInterval)
	for {
		select {
		case <-o.stopChan:
			return
		case now := <-ticker.C:
			o.world.RunSafe(o.Tic)

			// Drift correction: if we've fallen more than one interval
			// behind, resync instead of firing a burst of catch-up tics.
			deadline = deadline.Add(o.tickInterval)
			if now.Sub(deadline) > o.tickInterval {
				deadline = now.Add(o.tickInterval)
			}
		}
	}
}

// Tic executes exactly one simulation tic in spec §4.8 order. Callers
// driving the simulation manually (tests, demo playback) must hold the
// World's update lock themselves or call this before any concurrent
// reader (the renderer) takes a snapshot.
func (o *Orchestrator) Tic() {
	w := o.world

	// 1. read player command buffer
	if o.readInput != nil {
		o.readInput(w)
	}

	// 2. mobj thinkers (including players)
	for _, s := range w.MobjSystems() {
		s.Update(w)
	}

	// 3. sector action thinkers
	for _, s := range w.SectorSystems() {
		s.Update(w)
	}

	// 4. queued triggers (switches, teleports, end-of-level, sound requests)
	dispatched := o.router.DispatchAll(w)
	o.statEvents.Add(int64(dispatched))

	// 5. advance level tic counter
	tic := w.advanceTic()
	o.statTics.Store(int64(tic))

	// 6. flush deferred removals
	removed := w.FlushRemovals()
	o.statRemovals.Add(int64(removed))

	o.statEntities.Store(int64(w.Position.Count()))
}
