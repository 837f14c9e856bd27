package systems

import (
	"math/rand"

	"github.com/hordekit/horde-engine/engine/core"
	"github.com/hordekit/horde-engine/engine/defs"
)

const (
	baseSpawnInterval = 2.5
	minSpawnInterval  = 0.6
	spawnRampTime     = 600.0 // seconds until the interval bottoms out
	specialInterval   = 180.0 // one special every three minutes
)

// SpawnSystem instantiates enemies at the arena edges on a ramping interval,
// rotates through the special archetypes every three minutes, and drains the
// debug force-spawn queue. Constructed entities conform to the entity model;
// the world assigns their spawn-order counter.
type SpawnSystem struct {
	Arena core.Arena
	Bus   *core.EventBus
	Rng   *rand.Rand

	Elapsed      float64
	spawnTimer   float64
	specialTimer float64
	specialIdx   int
	forced       []string
}

func (s *SpawnSystem) Priority() int { return 70 }

func (s *SpawnSystem) Update(w *core.World, dt float64) {
	s.Elapsed += dt

	for _, arch := range s.forced {
		s.SpawnEnemy(w, arch)
	}
	s.forced = s.forced[:0]

	s.spawnTimer -= dt
	if s.spawnTimer <= 0 {
		s.spawnTimer = s.interval()
		pick := defs.Regulars[s.Rng.Intn(len(defs.Regulars))]
		s.SpawnEnemy(w, pick)
	}

	s.specialTimer += dt
	if s.specialTimer >= specialInterval && len(defs.Specials) > 0 {
		s.specialTimer = 0
		pick := defs.Specials[s.specialIdx%len(defs.Specials)]
		s.specialIdx++
		s.SpawnEnemy(w, pick)
	}
}

// ForceSpawn queues an archetype for immediate spawning next tick (debug)
func (s *SpawnSystem) ForceSpawn(archetype string) {
	s.forced = append(s.forced, archetype)
}

// interval ramps the regular spawn delay down over the session
func (s *SpawnSystem) interval() float64 {
	t := s.Elapsed / spawnRampTime
	if t > 1 {
		t = 1
	}
	return baseSpawnInterval + (minSpawnInterval-baseSpawnInterval)*t
}

// SpawnEnemy constructs a live enemy of the archetype at a random arena edge
func (s *SpawnSystem) SpawnEnemy(w *core.World, archetype string) core.EntityID {
	def := defs.Archetype(archetype)

	x := -def.Width / 2
	if s.Rng.Intn(2) == 1 {
		x = s.Arena.W - def.Width/2
	}
	minY, maxY := s.Arena.Band(def.Height)
	y := minY + s.Rng.Float64()*(maxY-minY)

	kind := core.KindEnemy
	if def.Special {
		kind = core.KindSpecial
	}

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
	w.Attach(id, &core.AnimState{Name: "walk", Frames: def.WalkFrames, Speed: 10, Loop: true})
	w.Attach(id, &core.Renderable{Kind: kind, Danger: def.DangerBase})

	if s.Bus != nil {
		s.Bus.Emit(core.Event{Type: core.EvtEnemySpawned, Tick: w.TickCount, Entity: id})
	}
	return id
}
