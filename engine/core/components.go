package core

import (
	"math"

	"github.com/hordekit/horde-engine/engine/status"
)

// ---- Position & Body ----

// Position is a world position in y-up coordinates. Y doubles as the depth
// axis: a higher Y means farther away, and the renderer draws it earlier.
type Position struct {
	X, Y float64
}

func (p *Position) Type() ComponentType { return CompPosition }

// DistanceTo returns euclidean distance to another position
func (p *Position) DistanceTo(other *Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Body holds an entity's visual extent, facing and hitbox shrink factor
type Body struct {
	W, H      float64
	Facing    int     // +1 right, -1 left
	HitShrink float64 // hitbox size relative to the visual box
}

func (b *Body) Type() ComponentType { return CompBody }

// Center returns the center point of a positioned body
func Center(p *Position, b *Body) (float64, float64) {
	return p.X + b.W/2, p.Y + b.H/2
}

// ---- Health ----

// Health represents hit points
type Health struct {
	Current float64
	Max     float64
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

// ---- Status ----

// Status attaches a timed-effect container to an entity
type Status struct {
	*status.Component
}

func (s *Status) Type() ComponentType { return CompStatus }

// NewStatus creates an empty status component
func NewStatus() *Status {
	return &Status{Component: status.NewComponent()}
}

// StatMul returns the entity's combined multiplier for a stat key, or 1.0
// when the entity carries no status component or no effect defines the key.
func StatMul(w *World, id EntityID, stat string) float64 {
	c := w.Get(id, CompStatus)
	if c == nil {
		return 1.0
	}
	return c.(*Status).Multiplier(stat, 1.0)
}

// ---- Player ----

// Player holds the player-controlled entity's combat state. Movement intent
// and the aim point arrive from the input collaborator once per tick.
type Player struct {
	WalkSpeed    float64
	RunSpeed     float64
	BulletDamage float64
	FireRate     float64 // seconds between shots
	FireCooldown float64
	MaxAmmo      int
	Ammo         int
	ReloadTime   float64
	ReloadTimer  float64
	Reloading    bool
	AimX, AimY   float64 // world coordinates
	HurtTimer    float64
	Dead         bool
}

func (p *Player) Type() ComponentType { return CompPlayer }

// ---- Enemy ----

// Enemy holds per-archetype combat stats resolved at spawn time. The base
// values never change afterwards; only status multipliers modify them.
type Enemy struct {
	Archetype       string
	Speed           float64
	Damage          float64
	AttackAnimSpeed float64 // attack animation frames per second
	AttackEnter     float64 // distance at which the melee swing starts
	AttackExit      float64 // distance at which the swing is abandoned
	SepRadius       float64
	DamageCooldown  float64 // time until this enemy may hurt the player again
	Attacking       bool
}

func (e *Enemy) Type() ComponentType { return CompEnemy }

// AttackInterval returns the minimum time between melee hits
func (e *Enemy) AttackInterval() float64 {
	if e.AttackAnimSpeed <= 0 {
		return 0
	}
	return 1.0 / e.AttackAnimSpeed
}

// AIState identifies a ranged special's current behavior
type AIState uint8

const (
	StateApproach AIState = iota
	StateAttack
	StateEscape
)

func (s AIState) String() string {
	switch s {
	case StateApproach:
		return "approach"
	case StateAttack:
		return "attack"
	case StateEscape:
		return "escape"
	}
	return "unknown"
}

// SpecialAI drives the three-state machine of ranged special enemies.
// Transitions are guarded only by distance to the player and timers.
type SpecialAI struct {
	State          AIState
	StateTime      float64 // seconds since the state was entered
	EngageDist     float64 // approach -> attack when distance <= this
	DisengageDist  float64 // attack -> escape when distance < this
	EscapeExitDist float64 // escape -> approach when distance >= this
	Windup         float64 // attack animation length before a shot
	WindupTimer    float64
	FireCooldown   float64 // delay between shots
	FireTimer      float64
}

func (a *SpecialAI) Type() ComponentType { return CompSpecialAI }

// EnterState switches state and resets the per-state timers
func (a *SpecialAI) EnterState(s AIState) {
	a.State = s
	a.StateTime = 0
	a.WindupTimer = 0
}

// ---- Projectile ----

// Projectile is a moving bullet or enemy shot. On-hit slow fields let player
// bullets stagger enemies briefly.
type Projectile struct {
	VX, VY       float64
	Damage       float64
	Knockback    float64
	FromPlayer   bool
	SlowFactor   float64 // move-speed multiplier applied on hit (0 = none)
	SlowDuration float64
}

func (p *Projectile) Type() ComponentType { return CompProjectile }

// ---- Animation ----

// AnimState represents animation state
type AnimState struct {
	Name     string
	Frame    int
	Timer    float64 // time accumulator
	Speed    float64 // frames per second
	Frames   int     // total frames in the current animation
	Loop     bool
	Finished bool
}

func (a *AnimState) Type() ComponentType { return CompAnim }

// Set switches to a new animation, resetting progress if the name changed
func (a *AnimState) Set(name string, frames int, fps float64, loop bool) {
	if a.Name == name {
		return
	}
	a.Name = name
	a.Frames = frames
	a.Speed = fps
	a.Loop = loop
	a.Frame = 0
	a.Timer = 0
	a.Finished = false
}

// ---- Rendering ----

// EntityKind tags what an entity looks like to the renderer
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindSpecial
	KindBullet
	KindEnemyShot
)

// Renderable carries the base danger-priority tier used by draw ordering
type Renderable struct {
	Kind   EntityKind
	Danger int
}

func (r *Renderable) Type() ComponentType { return CompRenderable }
