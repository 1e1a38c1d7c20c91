package player

import (
	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/engine"
	"github.com/lixenwraith/doomcore/geom"
)

// bobAngleStep is the BAM phase added per tic per whole world-unit of
// horizontal speed; at a typical walking speed this cycles roughly every
// 16-20 tics, matching the teacher's own per-tic cosmetic cycle lengths.
const bobAngleStep = 1 << 25

// ViewSystem advances each player's ViewZ walk-bob once per tic (spec
// §4.5 "view-z (eye height that bobs with walking)"), read later by the
// renderer's view-matrix build (spec §4.7). Separate from WeaponSystem
// since the two PSprite layers and the eye height are independent state.
type ViewSystem struct{ engine.SystemBase }

func NewViewSystem() *ViewSystem {
	return &ViewSystem{SystemBase: engine.NewSystemBase(16)}
}

func (s *ViewSystem) Update(w *engine.World) {
	for _, e := range w.PlayerC.All() {
		if !w.Alive(e) {
			continue
		}
		m, ok := w.Momentum.Get(e)
		if !ok {
			continue
		}
		speed := (m.X.Mul(m.X) + m.Y.Mul(m.Y)).Sqrt()
		w.PlayerC.Mutate(e, func(p *component.Player) {
			p.BobPhase += geom.Angle(uint32(speed.ToInt()) * bobAngleStep)
			amp := speed.Mul(component.MaxBobAmplitude)
			if amp > component.MaxBobAmplitude {
				amp = component.MaxBobAmplitude
			}
			p.ViewZ = component.ViewHeight + amp.Mul(p.BobPhase.Sin())/2
		})
	}
}
