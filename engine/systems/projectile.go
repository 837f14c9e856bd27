package systems

import (
	"github.com/hordekit/horde-engine/engine/core"
)

// oobMargin is how far past the arena a projectile may fly before removal
const oobMargin = 200.0

// ProjectileSystem integrates projectile velocities and culls strays
type ProjectileSystem struct {
	Arena core.Arena
}

func (s *ProjectileSystem) Priority() int { return 30 }

func (s *ProjectileSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompProjectile, core.CompPosition, core.CompBody) {
		proj := w.Get(id, core.CompProjectile).(*core.Projectile)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody).(*core.Body)

		pos.X += proj.VX * dt
		pos.Y += proj.VY * dt
		if proj.VX < 0 {
			body.Facing = -1
		} else if proj.VX > 0 {
			body.Facing = 1
		}

		r := core.Rect{X: pos.X, Y: pos.Y, W: body.W, H: body.H}
		if s.Arena.OutOfBounds(r, oobMargin) {
			w.Destroy(id)
		}
	}
}
