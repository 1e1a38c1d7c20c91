package sim

import "github.com/lixenwraith/doomcore/engine"

// InitLevel wires a freshly loaded Map's blockmap into the World as its
// mobj spatial index (engine.World.Grid), the one piece of setup every
// caller of Spawn/TryMove/PathTrace needs before the first tic — grouped
// here rather than folded into engine.NewWorld so engine stays free of any
// import on package sim (see engine.SpatialIndex's doc).
func InitLevel(w *engine.World) {
	w.SetGrid(NewMobjGrid(w.Map.Blockmap))
}
