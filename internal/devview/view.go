// Package devview is the terminal presentation/input device for
// cmd/doomrun: it owns the tcell.Screen, downsamples a render.Framebuffer
// into terminal cells once per rendered frame, and turns raw key events into
// player.Cmd values. Window/framebuffer presentation is an explicit
// Non-goal of the core itself (spec §1), so this is the one place in the
// whole module that is allowed to know a terminal exists, grounded on the
// teacher's own tcell.Screen lifecycle (cmd/vi-fighter/main.go's
// screen.Init/PollEvent loop and render/bridge.go's RGB-to-tcell bridge).
package devview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/doomcore/component"
	"github.com/lixenwraith/doomcore/player"
	"github.com/lixenwraith/doomcore/render"
)

// View owns the terminal screen. One View per process, matching the
// teacher's single-Screen setup.
type View struct {
	screen tcell.Screen
}

func New() (*View, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return newWithScreen(screen), nil
}

func newWithScreen(screen tcell.Screen) *View {
	screen.HideCursor()
	return &View{screen: screen}
}

func (v *View) Close() { v.screen.Fini() }

// Size reports the usable terminal size in cells.
func (v *View) Size() (width, height int) { return v.screen.Size() }

// Events starts the teacher's own pattern (cmd/vi-fighter/main.go: a
// goroutine blocked in PollEvent feeding a buffered channel) so the main
// loop never blocks on terminal input between render frames.
func (v *View) Events() <-chan tcell.Event {
	ch := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

// toTcell implements the same RGB-to-tcell bridge as the teacher's
// render/bridge.go, specialized to this package's RGB type.
func toTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present downsamples fb to the screen's current cell grid: since a
// terminal cell has no sub-pixel resolution worth chasing here (spec §1
// leaves presentation entirely out of scope for the core), each cell
// samples one nearest framebuffer pixel and is painted as a colored
// blank, the simplest faithful block-color downsample.
func (v *View) Present(fb *render.Framebuffer, hud string) {
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	hudRows := 1
	rows := h - hudRows
	if rows < 1 {
		rows = h
		hudRows = 0
	}
	style := tcell.StyleDefault
	for y := 0; y < rows; y++ {
		sy := y * fb.Height / rows
		for x := 0; x < w; x++ {
			sx := x * fb.Width / w
			px := fb.At(sx, sy)
			v.screen.SetContent(x, y, ' ', nil, style.Background(toTcell(px.Color)))
		}
	}
	if hudRows > 0 {
		drawText(v.screen, 0, rows, w, hud, style.Foreground(tcell.ColorWhite))
	}
	v.screen.Show()
}

// drawText paints s onto one row, first laying it out to exactly
// maxWidth terminal cells via FitToWidth so a HUD string longer (or
// containing wider runes) than the row never overruns it and a shorter
// one doesn't leave stale cells from the previous frame behind.
func drawText(screen tcell.Screen, x, y, maxWidth int, s string, style tcell.Style) {
	fitted := FitToWidth(s, maxWidth)
	col := x
	for _, r := range fitted {
		screen.SetContent(col, y, r, nil, style)
		col += runeCellWidth(r)
	}
}

// ReadCmd drains pending events without blocking and folds them into a
// single Cmd for the tic about to run (spec §4.8 step 1's external
// collaborator). W/S and Up/Down move, A/D strafe, Left/Right turn (Q
// turns left), space fires, 'e' uses,
// digits 1-4 switch weapons — a representative subset of the historical
// control scheme, not an attempt at full key-binding configurability
// (out of scope here, same as WAD parsing). A resize event needs no
// handling here: the screen already tracks its own new size, and the
// caller's render loop picks that up by polling Size() once per frame.
func ReadCmd(events <-chan tcell.Event) (player.Cmd, bool) {
	cmd := player.Cmd{Weapon: component.WeaponNone}
	quit := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return cmd, true
			}
			if key, isKey := ev.(*tcell.EventKey); isKey {
				if applyKey(&cmd, key) {
					quit = true
				}
			}
		default:
			return cmd, quit
		}
	}
}

const (
	moveStep = 6 << 16  // geom.Fixed units/tic, matches sim's walk-speed order of magnitude
	turnStep = 300      // BAM units/tic, a brisk but controllable turn rate
)

func applyKey(cmd *player.Cmd, ev *tcell.EventKey) (quit bool) {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
		return true
	}
	if ev.Key() == tcell.KeyRune {
		switch ev.Rune() {
		case 'w', 'W':
			cmd.Forward += moveStep
		case 's', 'S':
			cmd.Forward -= moveStep
		case 'a', 'A':
			cmd.Side -= moveStep
		case 'd', 'D':
			cmd.Side += moveStep
		case 'q', 'Q':
			cmd.Turn += turnStep
		case 'e', 'E':
			cmd.Use = true
		case ' ':
			cmd.Fire = true
		case '1':
			cmd.Weapon = component.WeaponPistol
		case '2':
			cmd.Weapon = component.WeaponShotgun
		case '3':
			cmd.Weapon = component.WeaponChaingun
		case '4':
			cmd.Weapon = component.WeaponRocket
		}
		return false
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		cmd.Turn += turnStep
	case tcell.KeyRight:
		cmd.Turn -= turnStep
	case tcell.KeyUp:
		cmd.Forward += moveStep
	case tcell.KeyDown:
		cmd.Forward -= moveStep
	}
	return false
}
