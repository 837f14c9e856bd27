package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBandBlocksBottomTenthAndTopThreeTenths(t *testing.T) {
	a := Arena{W: 1920, H: 1080}

	minY, maxY := a.Band(360)
	assert.Equal(t, 108.0, minY)
	assert.Equal(t, 1080.0-324.0-360.0, maxY)

	// A body too tall for the band collapses onto the floor.
	minY, maxY = a.Band(2000)
	assert.Equal(t, minY, maxY)
}

func TestClampKeepsBodyInsideBand(t *testing.T) {
	a := Arena{W: 1920, H: 1080}
	b := &Body{W: 200, H: 300}

	p := &Position{X: -50, Y: -100}
	a.Clamp(p, b)
	assert.Equal(t, 0.0, p.X)
	assert.Equal(t, 108.0, p.Y)

	p = &Position{X: 5000, Y: 5000}
	a.Clamp(p, b)
	assert.Equal(t, 1920.0-200.0, p.X)
	minY, maxY := a.Band(b.H)
	assert.GreaterOrEqual(t, p.Y, minY)
	assert.Equal(t, maxY, p.Y)
}

func TestHitboxShrinksAroundCenter(t *testing.T) {
	p := &Position{X: 100, Y: 200}
	b := &Body{W: 100, H: 200, HitShrink: 0.8}

	r := Hitbox(p, b)
	assert.InDelta(t, 110, r.X, 1e-9)
	assert.InDelta(t, 220, r.Y, 1e-9)
	assert.InDelta(t, 80, r.W, 1e-9)
	assert.InDelta(t, 160, r.H, 1e-9)

	// Shrink above 1.0 grows the box instead.
	b.HitShrink = 1.5
	r = Hitbox(p, b)
	assert.InDelta(t, 75, r.X, 1e-9)
	assert.InDelta(t, 150, r.W, 1e-9)
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 20, Y: 0, W: 5, H: 5}))
	// Edge contact does not count as overlap.
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}))
}

func TestOutOfBounds(t *testing.T) {
	a := Arena{W: 1920, H: 1080}
	inside := Rect{X: 100, Y: 100, W: 20, H: 20}
	assert.False(t, a.OutOfBounds(inside, 200))

	nearEdge := Rect{X: -150, Y: 100, W: 20, H: 20}
	assert.False(t, a.OutOfBounds(nearEdge, 200), "still within the margin")

	gone := Rect{X: -300, Y: 100, W: 20, H: 20}
	assert.True(t, a.OutOfBounds(gone, 200))
}
