package systems

import (
	"math"

	"github.com/hordekit/horde-engine/engine/core"
)

const (
	// softFactor damps the push so dense crowds relax over a few ticks
	// instead of teleporting apart.
	softFactor = 0.85

	// minCellSize bounds the grid cell so tiny radii don't explode the grid
	minCellSize = 64.0
)

// SeparationSystem applies soft repulsion between overlapping agents. A
// uniform grid sized to the largest separation radius limits each agent's
// pair checks to its own and the 8 neighboring cells. The player is never
// displaced by crowd pressure; the full push goes to the other side. Runs
// after movement, before the final clamp it applies itself.
type SeparationSystem struct {
	Arena core.Arena
}

func (s *SeparationSystem) Priority() int { return 40 }

type sepAgent struct {
	pos    *core.Position
	body   *core.Body
	x, y   float64 // cached center
	r      float64
	player bool
}

func (s *SeparationSystem) Update(w *core.World, _ float64) {
	agents := s.collect(w)
	if len(agents) < 2 {
		return
	}

	cell := minCellSize
	for i := range agents {
		if d := agents[i].r * 2; d > cell {
			cell = d
		}
	}

	cols := int(s.Arena.W/cell) + 1
	rows := int(s.Arena.H/cell) + 1
	cells := make([][]int, cols*rows)
	idx := func(x, y float64) (int, int) {
		cx := int(x / cell)
		cy := int(y / cell)
		if cx < 0 {
			cx = 0
		} else if cx >= cols {
			cx = cols - 1
		}
		if cy < 0 {
			cy = 0
		} else if cy >= rows {
			cy = rows - 1
		}
		return cx, cy
	}
	for i := range agents {
		cx, cy := idx(agents[i].x, agents[i].y)
		cells[cy*cols+cx] = append(cells[cy*cols+cx], i)
	}

	for i := range agents {
		cx, cy := idx(agents[i].x, agents[i].y)
		for ny := cy - 1; ny <= cy+1; ny++ {
			if ny < 0 || ny >= rows {
				continue
			}
			for nx := cx - 1; nx <= cx+1; nx++ {
				if nx < 0 || nx >= cols {
					continue
				}
				for _, j := range cells[ny*cols+nx] {
					if j <= i {
						continue
					}
					push(&agents[i], &agents[j])
				}
			}
		}
	}

	for i := range agents {
		s.Arena.Clamp(agents[i].pos, agents[i].body)
	}
}

// push separates one overlapping pair along the line between their centers
func push(a, b *sepAgent) {
	dx := a.x - b.x
	dy := a.y - b.y
	dist := math.Hypot(dx, dy)
	minDist := a.r + b.r
	if dist >= minDist {
		return
	}

	var ux, uy float64
	if dist > 1e-9 {
		ux, uy = dx/dist, dy/dist
	} else {
		// Exactly coincident centers: pick a fixed axis so the pair still
		// separates deterministically.
		ux, uy = 1, 0
	}

	amount := (minDist - dist) * softFactor
	switch {
	case a.player:
		b.move(-ux*amount, -uy*amount)
	case b.player:
		a.move(ux*amount, uy*amount)
	default:
		a.move(ux*amount/2, uy*amount/2)
		b.move(-ux*amount/2, -uy*amount/2)
	}
}

func (a *sepAgent) move(dx, dy float64) {
	a.pos.X += dx
	a.pos.Y += dy
	a.x += dx
	a.y += dy
}

func (s *SeparationSystem) collect(w *core.World) []sepAgent {
	var agents []sepAgent
	for _, id := range w.Query(core.CompEnemy, core.CompPosition, core.CompBody) {
		en := w.Get(id, core.CompEnemy).(*core.Enemy)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody).(*core.Body)
		x, y := core.Center(pos, body)
		agents = append(agents, sepAgent{pos: pos, body: body, x: x, y: y, r: en.SepRadius})
	}
	for _, id := range w.Query(core.CompPlayer, core.CompPosition, core.CompBody) {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody).(*core.Body)
		x, y := core.Center(pos, body)
		r := math.Min(body.W, body.H) * 0.45
		agents = append(agents, sepAgent{pos: pos, body: body, x: x, y: y, r: r, player: true})
	}
	return agents
}
