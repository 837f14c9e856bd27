package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/input"
)

// MenuAction is what the shell should do after a menu update
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuStart
	MenuRestart
)

// Menu renders the title screen and the end-of-run prompts
type Menu struct {
	ScreenW, ScreenH int
}

func NewMenu(sw, sh int) *Menu {
	return &Menu{ScreenW: sw, ScreenH: sh}
}

// Update reads menu input for the current game state
func (m *Menu) Update(in *input.State, state core.GameState) MenuAction {
	switch state {
	case core.StateMenu:
		if in.IsKeyJustPressed(ebiten.KeyEnter) {
			return MenuStart
		}
	case core.StateVictory, core.StateDefeat:
		if in.IsKeyJustPressed(ebiten.KeyEnter) {
			return MenuRestart
		}
	}
	return MenuNone
}

// Draw renders the title screen. End-of-run overlays are the HUD's job; the
// menu only owns the pre-session screen.
func (m *Menu) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(m.ScreenW), float32(m.ScreenH), color.RGBA{12, 14, 18, 255}, false)

	cx := m.ScreenW / 2
	cy := m.ScreenH / 2

	title := "H O R D E   L A N E"
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, cy-120)
	sub := "Survive 15 minutes"
	ebitenutil.DebugPrintAt(screen, sub, cx-len(sub)*3, cy-100)

	lines := []string{
		"WASD / arrows .... move",
		"Shift ............ run",
		"Left mouse ....... fire",
		"R ................ reload",
		"P ................ pause",
		"",
		"Press Enter to start",
	}
	y := cy - 40
	for _, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, cx-110, y)
		y += 18
	}

	footer := "debug: 1-3 spawn specials, 0 spawn walker, -/= time x0.25-x8, F1 hitboxes"
	ebitenutil.DebugPrintAt(screen, footer, cx-len(footer)*3, m.ScreenH-40)
}
