package core

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether two rectangles overlap on both axes
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Hitbox derives the collision rectangle from a positioned body: the visual
// box scaled by the body's shrink factor, centered on the visual box. A
// shrink above 1.0 grows the box instead (player bullets use this).
func Hitbox(p *Position, b *Body) Rect {
	hw := b.W * b.HitShrink
	hh := b.H * b.HitShrink
	return Rect{
		X: p.X + (b.W-hw)/2,
		Y: p.Y + (b.H-hh)/2,
		W: hw,
		H: hh,
	}
}

// HitboxOf returns the hitbox for an entity, or false if it has no geometry
func (w *World) HitboxOf(id EntityID) (Rect, bool) {
	pos := w.Get(id, CompPosition)
	body := w.Get(id, CompBody)
	if pos == nil || body == nil {
		return Rect{}, false
	}
	return Hitbox(pos.(*Position), body.(*Body)), true
}

// Arena is the fixed play area. The walkable band blocks the bottom tenth and
// the top three tenths of the arena height so every entity stays vertically
// co-plausible for collision and depth ordering.
type Arena struct {
	W, H float64
}

// Band returns the [minY, maxY] range a body of the given height may occupy
func (a Arena) Band(bodyH float64) (minY, maxY float64) {
	block := a.H / 10.0
	minY = block
	maxY = a.H - 3*block - bodyH
	if maxY < minY {
		maxY = minY
	}
	return minY, maxY
}

// Clamp forces a positioned body back inside the arena and its walkable band
func (a Arena) Clamp(p *Position, b *Body) {
	maxX := a.W - b.W
	if maxX < 0 {
		maxX = 0
	}
	if p.X < 0 {
		p.X = 0
	} else if p.X > maxX {
		p.X = maxX
	}

	minY, maxY := a.Band(b.H)
	if p.Y < minY {
		p.Y = minY
	} else if p.Y > maxY {
		p.Y = maxY
	}
}

// OutOfBounds reports whether a rectangle lies entirely beyond the arena plus
// the given margin; projectiles that wander this far are destroyed.
func (a Arena) OutOfBounds(r Rect, margin float64) bool {
	return r.X+r.W < -margin || r.X > a.W+margin ||
		r.Y+r.H < -margin || r.Y > a.H+margin
}
