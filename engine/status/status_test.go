package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplierCombinesAcrossEffects(t *testing.T) {
	c := NewComponent()
	c.Add("chill", 2.0, 1.0, 1, 1, map[string]float64{StatMoveSpeed: 0.5})
	c.Add("mire", 2.0, 1.0, 1, 1, map[string]float64{StatMoveSpeed: 0.8})

	assert.InDelta(t, 0.4, c.Multiplier(StatMoveSpeed, 1.0), 1e-9)
	// Keys no effect defines fall back to the caller's default.
	assert.Equal(t, 1.0, c.Multiplier(StatDamage, 1.0))
	assert.Equal(t, 2.5, c.Multiplier("unknown", 2.5))
}

func TestAddRefreshesInsteadOfDuplicating(t *testing.T) {
	c := NewComponent()
	c.Add("burn", 3.0, 2.0, 1, 5, map[string]float64{StatDamage: 1.1})
	c.Add("burn", 1.0, 5.0, 1, 5, nil)

	require.Equal(t, 1, c.Count())
	e := c.Get("burn")
	require.NotNil(t, e)
	assert.Equal(t, 3.0, e.Duration, "refresh keeps the longer duration")
	assert.Equal(t, 5.0, e.Potency, "refresh keeps the stronger potency")
	assert.Equal(t, 2, e.Stacks)
	assert.Equal(t, 1.1, e.Modifiers[StatDamage], "modifiers survive a nil-map refresh")
}

func TestStacksCapAtMax(t *testing.T) {
	c := NewComponent()
	for i := 0; i < 10; i++ {
		c.Add("staggered", 0.5, 1.0, 1, 3, map[string]float64{StatMoveSpeed: 0.85})
	}
	assert.Equal(t, 3, c.Get("staggered").Stacks)
}

func TestUpdateExpiresEffects(t *testing.T) {
	c := NewComponent()
	c.Add("short", 0.5, 1.0, 1, 1, nil)
	c.Add("long", 2.0, 1.0, 1, 1, nil)

	c.Update(1.0)
	assert.False(t, c.Has("short"))
	require.True(t, c.Has("long"))
	assert.InDelta(t, 1.0, c.Get("long").Duration, 1e-9)

	c.Update(1.0)
	assert.Equal(t, 0, c.Count())
}

func TestUpdateZeroDtIsNoOp(t *testing.T) {
	c := NewComponent()
	c.Add("burn", 1.0, 1.0, 1, 1, nil)

	c.Update(0)
	c.Update(-0.5)
	assert.Equal(t, 1.0, c.Get("burn").Duration)
}

func TestUpdatePartitionEquivalence(t *testing.T) {
	// Expiry only depends on total elapsed time, not how it is sliced.
	whole := NewComponent()
	sliced := NewComponent()
	for _, c := range []*Component{whole, sliced} {
		c.Add("a", 0.3, 1.0, 1, 1, nil)
		c.Add("b", 1.1, 1.0, 1, 1, nil)
	}

	whole.Update(1.0)
	for i := 0; i < 4; i++ {
		sliced.Update(0.25)
	}

	assert.Equal(t, whole.Has("a"), sliced.Has("a"))
	assert.Equal(t, whole.Has("b"), sliced.Has("b"))
	assert.InDelta(t, whole.Get("b").Duration, sliced.Get("b").Duration, 1e-9)
}

func TestRemove(t *testing.T) {
	c := NewComponent()
	c.Add("burn", 1.0, 1.0, 1, 1, map[string]float64{StatDamage: 2.0})
	c.Remove("burn")
	assert.False(t, c.Has("burn"))
	assert.Equal(t, 1.0, c.Multiplier(StatDamage, 1.0))
}
