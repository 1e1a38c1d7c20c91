// Command doombench is the headless tic+render throughput measurement
// for this module, the same "fixed duration, accumulate timings, print a
// stats block" shape as cmd/benchmark/main.go, but driving the actual
// simulation and rasterizer instead of a standalone shader demo: it runs
// engine.Orchestrator.Tic() back-to-back (no wall-clock pacing, no
// terminal) for the requested duration, rendering one frame per tic
// against internal/procart's procedural picture data, and reports tics
// and frames per second plus allocation stats.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/lixenwraith/doomcore/ai"
	"github.com/lixenwraith/doomcore/core"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/internal/config"
	"github.com/lixenwraith/doomcore/internal/demolevel"
	"github.com/lixenwraith/doomcore/internal/procart"
	"github.com/lixenwraith/doomcore/player"
	"github.com/lixenwraith/doomcore/render"
	"github.com/lixenwraith/doomcore/sector"
	"github.com/lixenwraith/doomcore/sim"
)

var (
	duration   = flag.Duration("duration", 20*time.Second, "benchmark duration")
	width      = flag.Int("width", 320, "framebuffer width in pixels")
	height     = flag.Int("height", 200, "framebuffer height in pixels")
	configPath = flag.String("config", "", "path to a TOML tunables file")
)

func main() {
	flag.Parse()

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

	orchestrator := engine.NewOrchestrator(w, time.Second/time.Duration(tunables.TicRate), nil)
	orchestrator.RegisterEventHandler(sector.NewTriggerHandler(mgr))

	renderer := render.NewRenderer(procart.New(), *width, *height)

	var tics, frames int64
	var ticTime, renderTime time.Duration

	start := time.Now()
	for time.Since(start) < *duration {
		tStart := time.Now()
		orchestrator.Tic()
		ticTime += time.Since(tStart)
		tics++

		pos, ok := w.Position.Get(playerEntity)
		if !ok {
			break // the player died; nothing left to benchmark
		}
		facing, _ := w.Facing.Get(playerEntity)
		pc, _ := w.PlayerC.Get(playerEntity)

		tRender := time.Now()
		renderer.RenderFrame(w, pos.X, pos.Y, pos.Z+pc.ViewZ, facing.Angle, pc.LookDir)
		renderTime += time.Since(tRender)
		frames++
	}
	totalTime := time.Since(start)

	fmt.Println("=== Simulation Benchmark Results ===")
	fmt.Printf("Resolution:   %dx%d\n", *width, *height)
	fmt.Printf("Total Tics:   %d\n", tics)
	fmt.Printf("Total Frames: %d\n", frames)
	fmt.Printf("Total Time:   %.2fs\n", totalTime.Seconds())
	fmt.Printf("Average TPS:  %.2f\n", float64(tics)/totalTime.Seconds())
	fmt.Printf("Average FPS:  %.2f\n", float64(frames)/totalTime.Seconds())
	fmt.Println("-------------------------------------")
	if tics > 0 {
		fmt.Printf("Avg Tic:      %v\n", ticTime/time.Duration(tics))
	}
	if frames > 0 {
		fmt.Printf("Avg Render:   %v\n", renderTime/time.Duration(frames))
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Printf("Total Alloc:  %d bytes\n", ms.TotalAlloc)
	fmt.Printf("Mallocs:      %d\n", ms.Mallocs)
}
