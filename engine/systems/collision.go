package systems

import (
	"math"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/status"
)

// staggerEffect is the brief slow a player bullet applies on hit
const staggerEffect = "staggered"

// CollisionSystem resolves every hitbox intersection of the tick: player
// bullets against enemies, enemy contact against the player, and enemy shots
// against the player. Entities that die here are only marked and queued; the
// world filters them at the end of the tick, so later pairs in the same tick
// still observe a consistent live/dead flag.
type CollisionSystem struct {
	Arena    core.Arena
	Bus      *core.EventBus
	PlayerID core.EntityID
}

func (s *CollisionSystem) Priority() int { return 50 }

func (s *CollisionSystem) Update(w *core.World, _ float64) {
	enemies := w.Query(core.CompEnemy, core.CompPosition, core.CompBody, core.CompHealth)

	var bullets, shots []core.EntityID
	for _, id := range w.Query(core.CompProjectile, core.CompPosition, core.CompBody) {
		if w.Get(id, core.CompProjectile).(*core.Projectile).FromPlayer {
			bullets = append(bullets, id)
		} else {
			shots = append(shots, id)
		}
	}

	for _, bid := range bullets {
		brect, _ := w.HitboxOf(bid)
		proj := w.Get(bid, core.CompProjectile).(*core.Projectile)
		for _, eid := range enemies {
			hp := w.Get(eid, core.CompHealth).(*core.Health)
			if hp.Current <= 0 {
				continue // already marked dead this tick
			}
			erect, _ := w.HitboxOf(eid)
			if !brect.Intersects(erect) {
				continue
			}
			s.hitEnemy(w, bid, proj, eid, hp)
			break // single target, no pass-through
		}
	}

	pl := w.Get(s.PlayerID, core.CompPlayer)
	php := w.Get(s.PlayerID, core.CompHealth)
	if pl == nil || php == nil {
		return
	}
	player := pl.(*core.Player)
	phealth := php.(*core.Health)
	prect, ok := w.HitboxOf(s.PlayerID)
	if !ok {
		return
	}

	for _, eid := range enemies {
		if phealth.Current <= 0 {
			break
		}
		hp := w.Get(eid, core.CompHealth).(*core.Health)
		en := w.Get(eid, core.CompEnemy).(*core.Enemy)
		if hp.Current <= 0 || en.DamageCooldown > 0 {
			continue
		}
		erect, _ := w.HitboxOf(eid)
		if !erect.Intersects(prect) {
			continue
		}
		dmg := en.Damage * core.StatMul(w, eid, status.StatDamage)
		s.damagePlayer(w, player, phealth, dmg)
		en.DamageCooldown = en.AttackInterval()
	}

	for _, sid := range shots {
		if phealth.Current <= 0 {
			break
		}
		srect, _ := w.HitboxOf(sid)
		if !srect.Intersects(prect) {
			continue
		}
		proj := w.Get(sid, core.CompProjectile).(*core.Projectile)
		s.damagePlayer(w, player, phealth, proj.Damage)
		w.Destroy(sid)
		if s.Bus != nil {
			s.Bus.Emit(core.Event{Type: core.EvtProjectileHit, Tick: w.TickCount, Entity: sid, Value: proj.Damage})
		}
	}
}

func (s *CollisionSystem) hitEnemy(w *core.World, bid core.EntityID, proj *core.Projectile, eid core.EntityID, hp *core.Health) {
	hp.Current -= proj.Damage

	if proj.Knockback > 0 {
		if l := math.Hypot(proj.VX, proj.VY); l > 0 {
			pos := w.Get(eid, core.CompPosition).(*core.Position)
			body := w.Get(eid, core.CompBody).(*core.Body)
			pos.X += proj.VX / l * proj.Knockback
			pos.Y += proj.VY / l * proj.Knockback
			s.Arena.Clamp(pos, body)
		}
	}
	if proj.SlowFactor > 0 {
		if st := w.Get(eid, core.CompStatus); st != nil {
			st.(*core.Status).Add(staggerEffect, proj.SlowDuration, 1.0, 1, 3,
				map[string]float64{status.StatMoveSpeed: proj.SlowFactor})
		}
	}

	if hp.Current <= 0 {
		hp.Current = 0
		w.Destroy(eid)
		if s.Bus != nil {
			s.Bus.Emit(core.Event{Type: core.EvtEnemyKilled, Tick: w.TickCount, Entity: eid})
		}
	}

	w.Destroy(bid)
	if s.Bus != nil {
		s.Bus.Emit(core.Event{Type: core.EvtProjectileHit, Tick: w.TickCount, Entity: bid, Value: proj.Damage})
	}
}

func (s *CollisionSystem) damagePlayer(w *core.World, player *core.Player, hp *core.Health, dmg float64) {
	hp.Current -= dmg
	player.HurtTimer = 0.3
	if s.Bus != nil {
		s.Bus.Emit(core.Event{Type: core.EvtPlayerDamaged, Tick: w.TickCount, Entity: s.PlayerID, Value: dmg})
	}
	if hp.Current <= 0 {
		hp.Current = 0
		player.Dead = true
		if s.Bus != nil {
			s.Bus.Emit(core.Event{Type: core.EvtPlayerDied, Tick: w.TickCount, Entity: s.PlayerID})
		}
	}
}
