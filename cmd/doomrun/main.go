// Command doomrun wires every module together into one playable process:
// a synthetic level (internal/demolevel), the fixed-tick simulation
// (engine/sim/player/ai/sector), a software-rasterized terminal
// presentation (render/internal/devview) and a procedurally synthesized
// audio device (internal/sound/device). It is the cmd/vi-fighter/main.go
// counterpart for this module — same shape (setupLogging, init systems,
// ticker-or-orchestrator-driven loop, tcell event channel), different
// domain.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/doomcore/ai"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/internal/config"
	"github.com/lixenwraith/doomcore/internal/demolevel"
	"github.com/lixenwraith/doomcore/internal/devview"
	"github.com/lixenwraith/doomcore/internal/procart"
	"github.com/lixenwraith/doomcore/internal/sound/device"
	"github.com/lixenwraith/doomcore/player"
	"github.com/lixenwraith/doomcore/render"
	"github.com/lixenwraith/doomcore/sector"
	"github.com/lixenwraith/doomcore/sim"
	"github.com/lixenwraith/doomcore/sound"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to logs/doomrun.log")
	configPath := flag.String("config", "", "path to a TOML tunables file (defaults built in if omitted)")
	flag.Parse()

	logFile := setupLogging(*debug)
	if logFile != nil {
		defer logFile.Close()
	}

	tunables := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config %q: %v\n", *configPath, err)
			os.Exit(1)
		}
		tunables = loaded
	}
	tunables.Apply()

	m, err := demolevel.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build level: %v\n", err)
		os.Exit(1)
	}

	w := engine.NewWorld(m)
	sim.InitLevel(w)
	sim.Register(w)
	ai.Register()
	player.Register()
	player.RegisterSystems(w)

	mgr := sector.NewManager()
	w.AddSectorSystem(sector.NewSystem(mgr))
	w.InitSystems()

	playerEntity := sim.SpawnThings(w)
	if playerEntity == core.NoEntity {
		fmt.Fprintln(os.Stderr, "level has no player start")
		os.Exit(1)
	}

	queue := sound.NewQueue()
	router := sound.NewRouter(queue)

	audio := device.New(queue)
	if err := audio.Init(); err != nil {
		log.Printf("audio device init failed, continuing without sound: %v", err)
	} else {
		go audio.Run()
		defer audio.Stop()
	}

	view, err := devview.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open terminal screen: %v\n", err)
		os.Exit(1)
	}
	defer view.Close()

	width, height := view.Size()
	pictures := procart.New()
	renderer := render.NewRenderer(pictures, width*2, height*2)

	events := view.Events()
	interval := time.Second / time.Duration(tunables.TicRate)

	var quitRequested atomic.Bool
	orchestrator := engine.NewOrchestrator(w, interval, func(world *engine.World) {
		cmd, quit := devview.ReadCmd(events)
		if quit {
			quitRequested.Store(true)
			return
		}
		player.ApplyCmd(world, playerEntity, cmd)
		router.UpdateListener(world, playerEntity)
	})
	orchestrator.RegisterEventHandler(sector.NewTriggerHandler(mgr))
	orchestrator.RegisterEventHandler(router)
	orchestrator.Start()
	defer orchestrator.Stop()

	renderTicker := time.NewTicker(time.Second / 30)
	defer renderTicker.Stop()
	for range renderTicker.C {
		if quitRequested.Load() {
			return
		}
		if newW, newH := view.Size(); newW != width || newH != height {
			width, height = newW, newH
			renderer = render.NewRenderer(pictures, width*2, height*2)
		}

		// Snapshot the world under its update lock (engine.Orchestrator.Tic's
		// own doc: "before any concurrent reader (the renderer) takes a
		// snapshot") so a frame never straddles a half-applied tic.
		w.Lock()
		pos, ok := w.Position.Get(playerEntity)
		if !ok {
			w.Unlock()
			return
		}
		facing, _ := w.Facing.Get(playerEntity)
		pc, _ := w.PlayerC.Get(playerEntity)
		viewZ := pos.Z + pc.ViewZ
		fb := renderer.RenderFrame(w, pos.X, pos.Y, viewZ, facing.Angle, pc.LookDir)
		tic := w.Tic()
		hp := healthOf(w, playerEntity)
		ammo := pc.Ammo[player.Weapons[pc.ReadyWeapon].Ammo]
		w.Unlock()

		hud := fmt.Sprintf("tic %d  hp %d  ammo %d", tic, hp, ammo)
		view.Present(fb, hud)
	}
}

func healthOf(w *engine.World, e core.Entity) int {
	h, ok := w.HealthC.Get(e)
	if !ok {
		return 0
	}
	return h.HP
}
