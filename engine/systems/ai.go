package systems

import (
	"math"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/defs"
	"github.com/hordekit/horde-engine/engine/status"
)

// contactStopDist keeps chasers from jittering on top of the player's center
const contactStopDist = 60.0

// AISystem moves every enemy. Regular (and melee special) archetypes chase
// the player directly and swing inside their melee band; ranged specials run
// the approach/attack/escape state machine. When no live player exists, all
// distance guards read as infinite: nobody moves, nobody fires.
type AISystem struct {
	Arena    core.Arena
	Bus      *core.EventBus
	PlayerID core.EntityID
}

func (s *AISystem) Priority() int { return 20 }

func (s *AISystem) Update(w *core.World, dt float64) {
	tx, ty, targetAlive := s.target(w)

	for _, id := range w.Query(core.CompEnemy, core.CompPosition, core.CompBody) {
		en := w.Get(id, core.CompEnemy).(*core.Enemy)
		pos := w.Get(id, core.CompPosition).(*core.Position)
		body := w.Get(id, core.CompBody).(*core.Body)
		anim := w.Get(id, core.CompAnim).(*core.AnimState)

		if en.DamageCooldown > 0 {
			en.DamageCooldown -= dt
		}

		if sp := w.Get(id, core.CompSpecialAI); sp != nil {
			s.updateRanged(w, id, en, sp.(*core.SpecialAI), pos, body, anim, dt, tx, ty, targetAlive)
			s.Arena.Clamp(pos, body)
			continue
		}

		def := defs.Archetype(en.Archetype)
		if !targetAlive {
			// No valid target: treat distance as infinite and idle.
			en.Attacking = false
			anim.Set("idle", def.WalkFrames, 10, true)
			continue
		}

		cx, cy := core.Center(pos, body)
		dx, dy := tx-cx, ty-cy
		dist := math.Hypot(dx, dy)

		speed := en.Speed * core.StatMul(w, id, status.StatMoveSpeed)
		if dist > contactStopDist {
			pos.X += dx / dist * speed * dt
			pos.Y += dy / dist * speed * dt
			face(body, dx)
		}
		s.Arena.Clamp(pos, body)

		// Melee band with hysteresis.
		if dist <= en.AttackEnter {
			en.Attacking = true
		} else if dist > en.AttackExit {
			en.Attacking = false
		}

		if en.Attacking {
			anim.Set("attack", def.AttackFrames, en.AttackAnimSpeed, true)
		} else {
			anim.Set("walk", def.WalkFrames, 10, true)
		}
	}
}

func (s *AISystem) updateRanged(w *core.World, id core.EntityID, en *core.Enemy, sp *core.SpecialAI,
	pos *core.Position, body *core.Body, anim *core.AnimState, dt float64, tx, ty float64, targetAlive bool) {

	def := defs.Archetype(en.Archetype)
	sp.StateTime += dt
	if sp.FireTimer > 0 {
		sp.FireTimer -= dt
	}

	if !targetAlive {
		// Infinite distance forces approach with nowhere to go.
		if sp.State != core.StateApproach {
			sp.EnterState(core.StateApproach)
		}
		en.Attacking = false
		anim.Set("idle", def.WalkFrames, 10, true)
		return
	}

	cx, cy := core.Center(pos, body)
	dx, dy := tx-cx, ty-cy
	dist := math.Hypot(dx, dy)
	speed := en.Speed * core.StatMul(w, id, status.StatMoveSpeed)

	switch sp.State {
	case core.StateApproach:
		en.Attacking = false
		if dist > contactStopDist {
			pos.X += dx / dist * speed * dt
			pos.Y += dy / dist * speed * dt
			face(body, dx)
		}
		anim.Set("walk", def.WalkFrames, 10, true)
		if dist <= sp.EngageDist {
			sp.EnterState(core.StateAttack)
		}

	case core.StateAttack:
		// Hold position, face the player, fire on windup completion.
		face(body, dx)
		en.Attacking = true
		anim.Set("attack", def.AttackFrames, en.AttackAnimSpeed, true)

		if dist < sp.DisengageDist {
			sp.EnterState(core.StateEscape)
			break
		}
		if dist > sp.EngageDist {
			sp.EnterState(core.StateApproach)
			break
		}
		if sp.FireTimer <= 0 {
			sp.WindupTimer += dt
			if sp.WindupTimer >= sp.Windup {
				s.fireAt(w, id, en, pos, body, tx, ty)
				sp.WindupTimer = 0
				sp.FireTimer = sp.FireCooldown
			}
		}

	case core.StateEscape:
		en.Attacking = false
		if dist > 0 {
			pos.X -= dx / dist * speed * dt
			pos.Y -= dy / dist * speed * dt
			face(body, -dx)
		}
		anim.Set("run", def.WalkFrames, 12, true)
		if dist >= sp.EscapeExitDist {
			sp.EnterState(core.StateApproach)
		}
	}
}

// fireAt spawns an enemy projectile aimed at the target's position right now
func (s *AISystem) fireAt(w *core.World, shooter core.EntityID, en *core.Enemy, pos *core.Position, body *core.Body, tx, ty float64) {
	cx, cy := core.Center(pos, body)
	sd := defs.EnemyShot

	dx, dy := tx-cx, ty-cy
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	} else {
		dx, dy = float64(body.Facing), 0
	}

	pid := w.Spawn()
	w.Attach(pid, &core.Position{X: cx - sd.Width/2, Y: cy - sd.Height/2})
	w.Attach(pid, &core.Body{W: sd.Width, H: sd.Height, Facing: sign(dx), HitShrink: sd.HitShrink})
	w.Attach(pid, &core.Projectile{
		VX:     dx * sd.Speed,
		VY:     dy * sd.Speed,
		Damage: en.Damage * core.StatMul(w, shooter, status.StatDamage),
	})
	w.Attach(pid, core.NewStatus())
	w.Attach(pid, &core.Renderable{Kind: core.KindEnemyShot, Danger: 0})

	if s.Bus != nil {
		s.Bus.Emit(core.Event{Type: core.EvtProjectileFired, Tick: w.TickCount, Entity: pid})
	}
}

// target returns the player's center and whether it is a valid AI target
func (s *AISystem) target(w *core.World) (float64, float64, bool) {
	pos := w.Get(s.PlayerID, core.CompPosition)
	body := w.Get(s.PlayerID, core.CompBody)
	hp := w.Get(s.PlayerID, core.CompHealth)
	if pos == nil || body == nil || hp == nil {
		return 0, 0, false
	}
	if hp.(*core.Health).Current <= 0 {
		return 0, 0, false
	}
	x, y := core.Center(pos.(*core.Position), body.(*core.Body))
	return x, y, true
}

func face(body *core.Body, dx float64) {
	if dx < 0 {
		body.Facing = -1
	} else if dx > 0 {
		body.Facing = 1
	}
}
