package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hordekit/horde-engine/engine/core"
)

// ArchetypeColors maps enemy archetypes to colors (placeholder until real sprites)
var ArchetypeColors = map[string]color.RGBA{
	"zombie_normal": {96, 128, 56, 255},  // olive
	"zombie_tank":   {70, 90, 45, 255},   // dark olive
	"zombie_fast":   {150, 180, 70, 255}, // pale green
	"zombie_heavy":  {110, 80, 50, 255},  // brown
	"kitsune":       {230, 120, 40, 255}, // orange
	"werewolf":      {120, 120, 140, 255},
	"gorgon":        {60, 160, 130, 255}, // teal
}

// KindColors covers anything without an archetype color
var KindColors = map[core.EntityKind]color.RGBA{
	core.KindPlayer:    {70, 130, 220, 255},
	core.KindEnemy:     {110, 140, 60, 255},
	core.KindSpecial:   {200, 80, 80, 255},
	core.KindBullet:    {250, 230, 120, 255},
	core.KindEnemyShot: {200, 60, 200, 255},
}

// Renderer draws the simulation as flat quads. World Y points up the lane;
// screen Y points down, so every position is flipped through the arena height.
type Renderer struct {
	Arena        core.Arena
	ShowHitboxes bool
}

// NewRenderer creates a renderer for the given arena
func NewRenderer(arena core.Arena) *Renderer {
	return &Renderer{Arena: arena}
}

// WorldToScreen converts a world-space entity origin to its screen-space
// top-left corner
func (r *Renderer) WorldToScreen(pos *core.Position, body *core.Body) (float32, float32) {
	return float32(pos.X), float32(r.Arena.H - pos.Y - body.H)
}

// Draw renders the walkable band and every entity back to front
func (r *Renderer) Draw(screen *ebiten.Image, w *core.World) {
	r.drawBand(screen)

	for _, id := range DrawOrder(w) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody)
		if body == nil {
			continue
		}
		b := body.(*core.Body)
		sx, sy := r.WorldToScreen(pos, b)

		clr := r.entityColor(w, id)
		vector.DrawFilledRect(screen, sx, sy, float32(b.W), float32(b.H), clr, false)

		// Facing marker on the leading edge
		mx := sx + float32(b.W) - 4
		if b.Facing < 0 {
			mx = sx
		}
		vector.DrawFilledRect(screen, mx, sy+float32(b.H)*0.2, 4, 6, color.RGBA{255, 255, 255, 200}, false)

		r.drawHealthBar(screen, w, id, sx, sy, float32(b.W))

		if r.ShowHitboxes {
			hb, ok := w.HitboxOf(id)
			if !ok {
				continue
			}
			hx := float32(hb.X)
			hy := float32(r.Arena.H - hb.Y - hb.H)
			vector.StrokeRect(screen, hx, hy, float32(hb.W), float32(hb.H), 1, color.RGBA{255, 0, 0, 255}, false)
		}
	}
}

// drawBand shades the walkable depth band so the lane limits read on screen
func (r *Renderer) drawBand(screen *ebiten.Image) {
	minY, maxY := r.Arena.Band(0)
	top := float32(r.Arena.H - maxY)
	bottom := float32(r.Arena.H - minY)
	vector.DrawFilledRect(screen, 0, top, float32(r.Arena.W), bottom-top, color.RGBA{40, 44, 36, 255}, false)
}

func (r *Renderer) entityColor(w *core.World, id core.EntityID) color.RGBA {
	rend := w.Get(id, core.CompRenderable).(*core.Renderable)

	clr, ok := KindColors[rend.Kind]
	if !ok {
		clr = color.RGBA{255, 0, 255, 255}
	}
	if e := w.Get(id, core.CompEnemy); e != nil {
		if c, ok := ArchetypeColors[e.(*core.Enemy).Archetype]; ok {
			clr = c
		}
		if e.(*core.Enemy).Attacking {
			clr.R = brighten(clr.R, 60)
		}
	}
	if p := w.Get(id, core.CompPlayer); p != nil {
		pl := p.(*core.Player)
		if pl.HurtTimer > 0 {
			clr = color.RGBA{240, 240, 240, 255} // hurt flash
		}
		if pl.Dead {
			clr = color.RGBA{80, 80, 90, 255}
		}
	}
	return clr
}

func (r *Renderer) drawHealthBar(screen *ebiten.Image, w *core.World, id core.EntityID, sx, sy, bw float32) {
	h := w.Get(id, core.CompHealth)
	if h == nil {
		return
	}
	hp := h.(*core.Health)
	if hp.Current >= hp.Max || hp.Max <= 0 {
		return
	}

	ratio := float32(hp.Ratio())
	vector.DrawFilledRect(screen, sx, sy-8, bw, 5, color.RGBA{40, 40, 40, 255}, false)
	bar := color.RGBA{80, 200, 80, 255}
	if ratio < 0.35 {
		bar = color.RGBA{210, 70, 50, 255}
	}
	vector.DrawFilledRect(screen, sx, sy-8, bw*ratio, 5, bar, false)
}

func brighten(v uint8, by uint8) uint8 {
	if v > 255-by {
		return 255
	}
	return v + by
}
