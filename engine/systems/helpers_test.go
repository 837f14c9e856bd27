package systems

import (
	"math/rand"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/defs"
)

var testArena = core.Arena{W: 1920, H: 1080}

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

// spawnEnemyAt builds a full enemy entity at an exact position, bypassing the
// spawner's edge placement.
func spawnEnemyAt(w *core.World, archetype string, x, y float64) core.EntityID {
	def := defs.Archetype(archetype)

	id := w.Spawn()
	w.Attach(id, &core.Position{X: x, Y: y})
	w.Attach(id, &core.Body{W: def.Width, H: def.Height, Facing: -1, HitShrink: def.HitShrink()})
	w.Attach(id, &core.Health{Current: def.MaxHP, Max: def.MaxHP})
	w.Attach(id, core.NewStatus())
	w.Attach(id, &core.Enemy{
		Archetype:       def.ID,
		Speed:           def.Speed,
		Damage:          def.Damage,
		AttackAnimSpeed: def.AttackAnimSpeed,
		AttackEnter:     def.AttackEnterDist,
		AttackExit:      def.AttackExitDist,
		SepRadius:       def.SeparationRadius(),
	})
	if def.Ranged {
		w.Attach(id, &core.SpecialAI{
			State:          core.StateApproach,
			EngageDist:     def.EngageDist,
			DisengageDist:  def.DisengageDist,
			EscapeExitDist: def.EscapeExitDist,
			Windup:         def.AttackWindup(),
			FireCooldown:   def.FireCooldown,
		})
	}
	kind := core.KindEnemy
	if def.Special {
		kind = core.KindSpecial
	}
	w.Attach(id, &core.AnimState{Name: "walk", Frames: def.WalkFrames, Speed: 10, Loop: true})
	w.Attach(id, &core.Renderable{Kind: kind, Danger: def.DangerBase})
	return id
}

// spawnBulletAt builds a player bullet with the loaded tuning, moving along vx/vy
func spawnBulletAt(w *core.World, x, y, vx, vy float64) core.EntityID {
	bdef := defs.Bullet
	id := w.Spawn()
	w.Attach(id, &core.Position{X: x, Y: y})
	w.Attach(id, &core.Body{W: bdef.Width, H: bdef.Height, Facing: 1, HitShrink: bdef.HitShrink})
	w.Attach(id, &core.Projectile{
		VX:           vx,
		VY:           vy,
		Damage:       defs.Player.BulletDamage,
		Knockback:    bdef.Knockback,
		FromPlayer:   true,
		SlowFactor:   bdef.SlowFactor,
		SlowDuration: bdef.SlowDuration,
	})
	w.Attach(id, &core.Renderable{Kind: core.KindBullet})
	return id
}
