package systems

import (
	"math"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/defs"
	"github.com/hordekit/horde-engine/engine/input"
	"github.com/hordekit/horde-engine/engine/status"
)

// PlayerSystem applies the per-tick input intent to the player entity:
// movement clamped to the walkable band, shoot cooldown, ammo and reload.
type PlayerSystem struct {
	Arena  core.Arena
	Bus    *core.EventBus
	Intent input.Intent // set by the shell once per tick
}

func (s *PlayerSystem) Priority() int { return 10 }

func (s *PlayerSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompPlayer, core.CompPosition, core.CompBody, core.CompHealth) {
		pl := w.Get(id, core.CompPlayer).(*core.Player)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody).(*core.Body)
		hp := w.Get(id, core.CompHealth).(*core.Health)
		anim := w.Get(id, core.CompAnim).(*core.AnimState)

		pl.AimX, pl.AimY = s.Intent.AimX, s.Intent.AimY

		if hp.Current <= 0 {
			pl.Dead = true
		}
		if pl.Dead {
			anim.Set("dead", 4, 10, false)
			continue
		}

		if pl.HurtTimer > 0 {
			pl.HurtTimer -= dt
		}
		if pl.FireCooldown > 0 {
			pl.FireCooldown -= dt
		}
		if pl.Reloading {
			pl.ReloadTimer -= dt
			if pl.ReloadTimer <= 0 {
				pl.Reloading = false
				pl.Ammo = pl.MaxAmmo
			}
		}
		if s.Intent.Reload && !pl.Reloading && pl.Ammo < pl.MaxAmmo {
			pl.Reloading = true
			pl.ReloadTimer = pl.ReloadTime
		}

		firing := s.Intent.Fire && !pl.Reloading

		// Movement; shooting forces walk pace.
		mx, my := s.Intent.MoveX, s.Intent.MoveY
		if l := math.Hypot(mx, my); l > 0 {
			mx, my = mx/l, my/l
			speed := pl.WalkSpeed
			if s.Intent.Run && !firing {
				speed = pl.RunSpeed
			}
			speed *= core.StatMul(w, id, status.StatMoveSpeed)
			pos.X += mx * speed * dt
			pos.Y += my * speed * dt
			if mx < 0 {
				body.Facing = -1
			} else if mx > 0 {
				body.Facing = 1
			}
		}
		s.Arena.Clamp(pos, body)

		// Face the cursor while firing.
		cx, _ := core.Center(pos, body)
		if firing {
			if pl.AimX < cx {
				body.Facing = -1
			} else {
				body.Facing = 1
			}
		}

		if firing && pl.FireCooldown <= 0 && pl.Ammo > 0 {
			s.fire(w, id, pl, pos, body)
		}

		switch {
		case firing:
			anim.Set("shot", 5, 10, true)
		case mx != 0 || my != 0:
			if s.Intent.Run {
				anim.Set("run", 8, 10, true)
			} else {
				anim.Set("walk", 7, 10, true)
			}
		default:
			anim.Set("idle", 7, 10, true)
		}
	}
}

func (s *PlayerSystem) fire(w *core.World, id core.EntityID, pl *core.Player, pos *core.Position, body *core.Body) {
	mx, my := muzzle(pos, body)
	dx := pl.AimX - mx
	dy := pl.AimY - my
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	} else {
		dx, dy = float64(body.Facing), 0
	}

	bdef := defs.Bullet
	bid := w.Spawn()
	w.Attach(bid, &core.Position{X: mx - bdef.Width/2, Y: my - bdef.Height/2})
	w.Attach(bid, &core.Body{W: bdef.Width, H: bdef.Height, Facing: sign(dx), HitShrink: bdef.HitShrink})
	w.Attach(bid, &core.Projectile{
		VX:           dx * defs.Player.BulletSpeed,
		VY:           dy * defs.Player.BulletSpeed,
		Damage:       pl.BulletDamage * core.StatMul(w, id, status.StatDamage),
		Knockback:    bdef.Knockback,
		FromPlayer:   true,
		SlowFactor:   bdef.SlowFactor,
		SlowDuration: bdef.SlowDuration,
	})
	w.Attach(bid, core.NewStatus())
	w.Attach(bid, &core.Renderable{Kind: core.KindBullet, Danger: 0})

	pl.FireCooldown = pl.FireRate * core.StatMul(w, id, status.StatFireRate)
	pl.Ammo--
	if pl.Ammo <= 0 {
		pl.Reloading = true
		pl.ReloadTimer = pl.ReloadTime
	}
	if s.Bus != nil {
		s.Bus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: w.TickCount, Entity: bid})
	}
}

// muzzle returns the gun barrel position on the player sprite
func muzzle(pos *core.Position, body *core.Body) (float64, float64) {
	xr := 0.79
	if body.Facing == -1 {
		xr = 0.21
	}
	return pos.X + body.W*xr, pos.Y + body.H*0.45
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// NewPlayer spawns the player entity at a position using the loaded stats
func NewPlayer(w *core.World, x, y float64) core.EntityID {
	pd := defs.Player
	id := w.Spawn()
	w.Attach(id, &core.Position{X: x, Y: y})
	w.Attach(id, &core.Body{W: pd.Width, H: pd.Height, Facing: 1, HitShrink: 0.82})
	w.Attach(id, &core.Health{Current: pd.MaxHP, Max: pd.MaxHP})
	w.Attach(id, core.NewStatus())
	w.Attach(id, &core.Player{
		WalkSpeed:    pd.WalkSpeed,
		RunSpeed:     pd.RunSpeed,
		BulletDamage: pd.BulletDamage,
		FireRate:     pd.FireRate,
		MaxAmmo:      pd.MaxAmmo,
		Ammo:         pd.MaxAmmo,
		ReloadTime:   pd.ReloadTime,
	})
	w.Attach(id, &core.AnimState{Name: "idle", Frames: 7, Speed: 10, Loop: true})
	w.Attach(id, &core.Renderable{Kind: core.KindPlayer, Danger: 0})
	return id
}
