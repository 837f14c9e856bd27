package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hordekit/horde-engine/engine/core"
)

// HUD is the in-session heads-up display
type HUD struct {
	ScreenW, ScreenH int
	TopBarHeight     int

	Kills int
}

func NewHUD(sw, sh int) *HUD {
	return &HUD{
		ScreenW:      sw,
		ScreenH:      sh,
		TopBarHeight: 30,
	}
}

// Draw renders the top bar, the player vitals panel, and any state overlay
func (h *HUD) Draw(screen *ebiten.Image, s *core.Session) {
	h.drawTopBar(screen, s)
	h.drawVitals(screen, s)
	h.drawOverlay(screen, s)
}

func (h *HUD) drawTopBar(screen *ebiten.Image, s *core.Session) {
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.TopBarHeight), color.RGBA{0, 0, 0, 180}, false)

	remaining := s.Remaining()
	mins := int(remaining) / 60
	secs := int(remaining) % 60
	info := fmt.Sprintf("Time: %02d:%02d | Enemies: %d | Kills: %d", mins, secs, s.EnemyCount(), h.Kills)
	if s.TimeScale != 1.0 {
		info += fmt.Sprintf(" | Speed: x%.2g", s.TimeScale)
	}
	ebitenutil.DebugPrintAt(screen, info, 10, 8)
}

func (h *HUD) drawVitals(screen *ebiten.Image, s *core.Session) {
	p := s.World.Get(s.PlayerID, core.CompPlayer)
	hp := s.World.Get(s.PlayerID, core.CompHealth)
	if p == nil || hp == nil {
		return
	}
	player := p.(*core.Player)
	health := hp.(*core.Health)

	py := float32(h.ScreenH - 60)
	vector.DrawFilledRect(screen, 0, py, 320, 60, color.RGBA{0, 0, 0, 180}, false)

	// HP bar
	ratio := float32(health.Ratio())
	barColor := color.RGBA{0, 200, 0, 255}
	if ratio < 0.5 {
		barColor = color.RGBA{255, 200, 0, 255}
	}
	if ratio < 0.25 {
		barColor = color.RGBA{255, 0, 0, 255}
	}
	vector.DrawFilledRect(screen, 10, py+10, 200, 14, color.RGBA{40, 40, 40, 255}, false)
	vector.DrawFilledRect(screen, 10, py+10, 200*ratio, 14, barColor, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("HP %.0f/%.0f", health.Current, health.Max), 220, int(py)+10)

	ammo := fmt.Sprintf("Ammo: %d/%d", player.Ammo, player.MaxAmmo)
	if player.Reloading {
		ammo = fmt.Sprintf("Reloading... %.1fs", player.ReloadTimer)
	}
	ebitenutil.DebugPrintAt(screen, ammo, 10, int(py)+34)
}

func (h *HUD) drawOverlay(screen *ebiten.Image, s *core.Session) {
	var msg string
	switch s.State {
	case core.StatePaused:
		msg = "=== PAUSED ==="
	case core.StateVictory:
		msg = fmt.Sprintf("=== YOU SURVIVED ===  Kills: %d  (Enter to restart)", h.Kills)
	case core.StateDefeat:
		msg = fmt.Sprintf("=== YOU DIED ===  Kills: %d  (Enter to restart)", h.Kills)
	default:
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(h.ScreenW), float32(h.ScreenH), color.RGBA{0, 0, 0, 120}, false)
	ebitenutil.DebugPrintAt(screen, msg, h.ScreenW/2-len(msg)*3, h.ScreenH/2)
}
