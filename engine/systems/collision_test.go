package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/status"
)

func TestBulletHitsOnlyTheFirstEnemy(t *testing.T) {
	w := core.NewWorld(60)
	a := spawnEnemyAt(w, "zombie_normal", 900, 200)
	b := spawnEnemyAt(w, "zombie_normal", 910, 200)
	bullet := spawnBulletAt(w, 1000, 370, 800, 0)

	col := &CollisionSystem{Arena: testArena}
	col.Update(w, testDt)
	w.Tick(0)

	hpA := w.Get(a, core.CompHealth).(*core.Health)
	hpB := w.Get(b, core.CompHealth).(*core.Health)
	assert.Equal(t, 40.0, hpA.Current, "earliest spawn absorbs the bullet")
	assert.Equal(t, 50.0, hpB.Current)
	assert.False(t, w.Alive(bullet), "bullets never pass through")
}

func TestBulletAppliesKnockbackAndStagger(t *testing.T) {
	w := core.NewWorld(60)
	enemy := spawnEnemyAt(w, "zombie_normal", 900, 200)
	spawnBulletAt(w, 1000, 370, 800, 0)

	col := &CollisionSystem{Arena: testArena}
	col.Update(w, testDt)

	pos := w.Get(enemy, core.CompPosition).(*core.Position)
	assert.InDelta(t, 914.0, pos.X, 1e-9, "knocked back along the bullet's flight")

	st := w.Get(enemy, core.CompStatus).(*core.Status)
	require.True(t, st.Has("staggered"))
	assert.InDelta(t, 0.85, core.StatMul(w, enemy, status.StatMoveSpeed), 1e-9)

	// Repeated hits stack the slow up to its cap.
	for i := 0; i < 5; i++ {
		spawnBulletAt(w, 1000, 370, 800, 0)
		col.Update(w, testDt)
	}
	assert.Equal(t, 3, st.Get("staggered").Stacks)
}

func TestBulletSkipsEnemiesMarkedDeadThisTick(t *testing.T) {
	w := core.NewWorld(60)
	a := spawnEnemyAt(w, "zombie_normal", 900, 200)
	b := spawnEnemyAt(w, "zombie_normal", 910, 200)
	w.Get(a, core.CompHealth).(*core.Health).Current = 0

	spawnBulletAt(w, 1000, 370, 800, 0)

	col := &CollisionSystem{Arena: testArena}
	col.Update(w, testDt)

	hpB := w.Get(b, core.CompHealth).(*core.Health)
	assert.Equal(t, 40.0, hpB.Current, "dead enemies no longer soak hits")
}

func TestKillDestroysAndEmits(t *testing.T) {
	w := core.NewWorld(60)
	bus := core.NewEventBus()
	enemy := spawnEnemyAt(w, "zombie_normal", 900, 200)
	w.Get(enemy, core.CompHealth).(*core.Health).Current = 10
	spawnBulletAt(w, 1000, 370, 800, 0)

	var kills int
	bus.On(core.EvtEnemyKilled, func(core.Event) { kills++ })

	col := &CollisionSystem{Arena: testArena, Bus: bus}
	col.Update(w, testDt)
	w.Tick(0)
	bus.Dispatch()

	assert.False(t, w.Alive(enemy))
	assert.Equal(t, 1, kills)
}

func TestEnemyContactDamageGatedByCooldown(t *testing.T) {
	w := core.NewWorld(60)
	player := NewPlayer(w, 800, 300)
	enemy := spawnEnemyAt(w, "zombie_normal", 820, 300)

	col := &CollisionSystem{Arena: testArena, PlayerID: player}
	hp := w.Get(player, core.CompHealth).(*core.Health)

	col.Update(w, testDt)
	assert.Equal(t, 90.0, hp.Current)

	en := w.Get(enemy, core.CompEnemy).(*core.Enemy)
	assert.InDelta(t, en.AttackInterval(), en.DamageCooldown, 1e-9)

	// The cooldown only ticks down in the AI system; without it the enemy
	// cannot bite again no matter how often collisions run.
	for i := 0; i < 10; i++ {
		col.Update(w, testDt)
	}
	assert.Equal(t, 90.0, hp.Current)
}

func TestEnemyShotDamagesPlayerOnce(t *testing.T) {
	w := core.NewWorld(60)
	player := NewPlayer(w, 800, 300)

	shot := w.Spawn()
	w.Attach(shot, &core.Position{X: 810, Y: 400})
	w.Attach(shot, &core.Body{W: 160, H: 160, Facing: -1, HitShrink: 0.75})
	w.Attach(shot, &core.Projectile{VX: -450, Damage: 25})
	w.Attach(shot, &core.Renderable{Kind: core.KindEnemyShot})

	col := &CollisionSystem{Arena: testArena, PlayerID: player}
	col.Update(w, testDt)
	w.Tick(0)

	hp := w.Get(player, core.CompHealth).(*core.Health)
	assert.Equal(t, 75.0, hp.Current)
	assert.False(t, w.Alive(shot))

	pl := w.Get(player, core.CompPlayer).(*core.Player)
	assert.Greater(t, pl.HurtTimer, 0.0)
}

func TestPlayerDeathEmitsOnce(t *testing.T) {
	w := core.NewWorld(60)
	bus := core.NewEventBus()
	player := NewPlayer(w, 800, 300)
	w.Get(player, core.CompHealth).(*core.Health).Current = 5
	spawnEnemyAt(w, "zombie_normal", 820, 300)

	var deaths int
	bus.On(core.EvtPlayerDied, func(core.Event) { deaths++ })

	col := &CollisionSystem{Arena: testArena, Bus: bus, PlayerID: player}
	col.Update(w, testDt)
	col.Update(w, testDt)
	bus.Dispatch()

	assert.Equal(t, 1, deaths)
	assert.True(t, w.Get(player, core.CompPlayer).(*core.Player).Dead)
	assert.Equal(t, 0.0, w.Get(player, core.CompHealth).(*core.Health).Current)
}

func TestCollisionOutcomeIsReproducible(t *testing.T) {
	run := func() []float64 {
		w := core.NewWorld(60)
		player := NewPlayer(w, 300, 300)
		enemies := []core.EntityID{
			spawnEnemyAt(w, "zombie_normal", 900, 200),
			spawnEnemyAt(w, "zombie_tank", 905, 210),
			spawnEnemyAt(w, "zombie_fast", 910, 190),
		}
		spawnBulletAt(w, 1000, 370, 800, 0)
		spawnBulletAt(w, 1010, 380, 800, 0)

		col := &CollisionSystem{Arena: testArena, PlayerID: player}
		for i := 0; i < 5; i++ {
			col.Update(w, testDt)
			w.Tick(0)
		}

		var hps []float64
		for _, id := range enemies {
			if hp := w.Get(id, core.CompHealth); hp != nil {
				hps = append(hps, hp.(*core.Health).Current)
			} else {
				hps = append(hps, -1)
			}
		}
		return hps
	}

	assert.Equal(t, run(), run(), "identical worlds resolve identically")
}
