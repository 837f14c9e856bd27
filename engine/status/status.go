// Package status implements timed multiplicative stat modifiers for combat
// entities. A component is owned by exactly one entity; effects never interact
// across entities.
package status

// Stat keys understood by the combat systems. Unknown keys resolve to the
// caller's default multiplier rather than an error.
const (
	StatMoveSpeed = "move_speed"
	StatDamage    = "damage"
	StatFireRate  = "fire_rate"
)

// Effect is a named timed modifier bundle. Modifiers map a stat key to a
// multiplier; multipliers from different effects combine multiplicatively.
type Effect struct {
	Name      string
	Duration  float64 // seconds remaining, monotonically decreasing
	Potency   float64
	Stacks    int
	MaxStacks int
	Modifiers map[string]float64
}

// Component holds the active effects for a single entity, at most one per
// effect name. Reapplying a name refreshes the existing effect instead of
// duplicating it.
type Component struct {
	effects map[string]*Effect
}

// NewComponent creates an empty status container
func NewComponent() *Component {
	return &Component{effects: make(map[string]*Effect)}
}

// Add inserts or refreshes the named effect. On refresh the duration becomes
// the max of old and new, potency becomes the max, stacks increment up to the
// effect's cap, and modifiers are merged. The active effect is returned.
func (c *Component) Add(name string, duration, potency float64, stacks, maxStacks int, modifiers map[string]float64) *Effect {
	if maxStacks < 1 {
		maxStacks = 1
	}
	if e, ok := c.effects[name]; ok {
		if duration > e.Duration {
			e.Duration = duration
		}
		if potency > e.Potency {
			e.Potency = potency
		}
		if maxStacks > e.MaxStacks {
			e.MaxStacks = maxStacks
		}
		e.Stacks += stacks
		if e.Stacks > e.MaxStacks {
			e.Stacks = e.MaxStacks
		}
		for k, v := range modifiers {
			e.Modifiers[k] = v
		}
		return e
	}

	e := &Effect{
		Name:      name,
		Duration:  duration,
		Potency:   potency,
		Stacks:    stacks,
		MaxStacks: maxStacks,
		Modifiers: make(map[string]float64, len(modifiers)),
	}
	if e.Stacks > e.MaxStacks {
		e.Stacks = e.MaxStacks
	}
	for k, v := range modifiers {
		e.Modifiers[k] = v
	}
	c.effects[name] = e
	return e
}

// Remove drops the named effect if present
func (c *Component) Remove(name string) {
	delete(c.effects, name)
}

// Has reports whether the named effect is active
func (c *Component) Has(name string) bool {
	_, ok := c.effects[name]
	return ok
}

// Get returns the named effect, or nil
func (c *Component) Get(name string) *Effect {
	return c.effects[name]
}

// Count returns the number of active effects
func (c *Component) Count() int {
	return len(c.effects)
}

// Update decrements every active effect's remaining duration by dt and
// removes the ones that expire. A zero dt is a no-op.
func (c *Component) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for name, e := range c.effects {
		e.Duration -= dt
		if e.Duration <= 0 {
			delete(c.effects, name)
		}
	}
}

// Multiplier returns the product of the modifier for stat across every active
// effect that defines it, or def when none do.
func (c *Component) Multiplier(stat string, def float64) float64 {
	value := def
	for _, e := range c.effects {
		if m, ok := e.Modifiers[stat]; ok {
			value *= m
		}
	}
	return value
}
