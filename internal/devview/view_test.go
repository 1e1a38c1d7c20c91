package devview

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/player"
	"github.com/lixenwraith/doomcore/render"
)

func simView(t *testing.T, w, h int) *View {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(w, h)
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return newWithScreen(screen)
}

func TestPresentFillsEveryCellFromFramebuffer(t *testing.T) {
	v := simView(t, 20, 10)
	defer v.Close()

	fb := render.NewFramebuffer(4, 4)
	fb.TestAndSet(0, 0, render.RGB{R: 200, G: 10, B: 10}, 1.0)

	v.Present(fb, "hud")

	sim := v.screen.(tcell.SimulationScreen)
	cells, w, h := sim.GetContents()
	if w != 20 || h != 10 {
		t.Fatalf("screen size = %dx%d, want 20x10", w, h)
	}
	if len(cells) != w*h {
		t.Fatalf("len(cells) = %d, want %d", len(cells), w*h)
	}
}

func zeroCmd() player.Cmd { return player.Cmd{Weapon: component.WeaponNone} }

func TestApplyKeyWASDSetsMovement(t *testing.T) {
	cmd := zeroCmd()
	applyKey(&cmd, tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if cmd.Forward <= 0 {
		t.Fatalf("Forward = %v, want > 0 after 'w'", cmd.Forward)
	}

	cmd = zeroCmd()
	applyKey(&cmd, tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if cmd.Side <= 0 {
		t.Fatalf("Side = %v, want > 0 after 'd'", cmd.Side)
	}
}

func TestApplyKeyWeaponDigitsMapToWeaponTypes(t *testing.T) {
	cmd := zeroCmd()
	applyKey(&cmd, tcell.NewEventKey(tcell.KeyRune, '2', tcell.ModNone))
	if cmd.Weapon != component.WeaponShotgun {
		t.Fatalf("Weapon = %v, want WeaponShotgun", cmd.Weapon)
	}
}

func TestApplyKeyEscapeRequestsQuit(t *testing.T) {
	cmd := zeroCmd()
	if quit := applyKey(&cmd, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); !quit {
		t.Fatalf("escape should request quit")
	}
}
