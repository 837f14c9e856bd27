// Package defs holds the immutable stat tables the simulation is tuned by.
// Definitions are loaded once at startup and never mutated afterwards; combat
// systems only ever scale them through status multipliers.
package defs

// ArchetypeDef holds all the static data for one enemy category
type ArchetypeDef struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Special bool   `yaml:"special"`
	Ranged  bool   `yaml:"ranged"`

	MaxHP  float64 `yaml:"max_hp"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`

	// AttackAnimSpeed is the attack animation rate in frames per second;
	// 1/AttackAnimSpeed is also the minimum delay between melee hits.
	AttackAnimSpeed float64 `yaml:"attack_anim_speed"`
	AttackFrames    int     `yaml:"attack_frames"`
	WalkFrames      int     `yaml:"walk_frames"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Melee band: swing starts inside enter, stops beyond exit.
	AttackEnterDist float64 `yaml:"attack_enter_dist"`
	AttackExitDist  float64 `yaml:"attack_exit_dist"`

	// Ranged state machine thresholds (ranged archetypes only).
	EngageDist     float64 `yaml:"engage_dist"`
	DisengageDist  float64 `yaml:"disengage_dist"`
	EscapeExitDist float64 `yaml:"escape_exit_dist"`
	FireCooldown   float64 `yaml:"fire_cooldown"`

	DangerBase int `yaml:"danger_base"`
}

// SeparationRadius derives the soft-repulsion radius from the body size:
// 0.45 x min(w, h) for regular enemies, 0.50 for specials.
func (d ArchetypeDef) SeparationRadius() float64 {
	m := d.Width
	if d.Height < m {
		m = d.Height
	}
	if d.Special {
		return m * 0.50
	}
	return m * 0.45
}

// HitShrink keeps collision tighter than the visual silhouette
func (d ArchetypeDef) HitShrink() float64 {
	if d.Special {
		return 0.80
	}
	return 0.82
}

// AttackWindup returns the attack animation length in seconds
func (d ArchetypeDef) AttackWindup() float64 {
	if d.AttackAnimSpeed <= 0 {
		return 0
	}
	return float64(d.AttackFrames) / d.AttackAnimSpeed
}

// PlayerDef holds the player's base stats
type PlayerDef struct {
	MaxHP        float64 `yaml:"max_hp"`
	WalkSpeed    float64 `yaml:"walk_speed"`
	RunSpeed     float64 `yaml:"run_speed"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BulletDamage float64 `yaml:"bullet_damage"`
	FireRate     float64 `yaml:"fire_rate"`
	MaxAmmo      int     `yaml:"max_ammo"`
	ReloadTime   float64 `yaml:"reload_time"`
	BulletSpeed  float64 `yaml:"bullet_speed"`
}

// ProjectileDef holds static projectile tuning
type ProjectileDef struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	HitShrink    float64 `yaml:"hit_shrink"`
	Knockback    float64 `yaml:"knockback"`
	SlowFactor   float64 `yaml:"slow_factor"`
	SlowDuration float64 `yaml:"slow_duration"`
}
