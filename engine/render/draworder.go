package render

import (
	"sort"

	"github.com/hordekit/horde-engine/engine/core"
)

// DangerTier ranks an entity for layering. Specials sit above regulars via
// their base danger; an entity actively attacking is raised further so it
// reads on top of the crowd.
func DangerTier(w *core.World, id core.EntityID) int {
	tier := 0
	if r := w.Get(id, core.CompRenderable); r != nil {
		tier = r.(*core.Renderable).Danger
	}
	if e := w.Get(id, core.CompEnemy); e != nil && e.(*core.Enemy).Attacking {
		tier += 2
	}
	if ai := w.Get(id, core.CompSpecialAI); ai != nil && ai.(*core.SpecialAI).State == core.StateAttack {
		tier++
	}
	return tier
}

// DrawOrder returns all renderable entities back to front: lower danger tier
// first, then higher Y (farther up the lane) first, then spawn order. The
// spawn-order tie break keeps layering stable when two entities share a row.
func DrawOrder(w *core.World) []core.EntityID {
	ids := w.Query(core.CompRenderable, core.CompPosition)

	type key struct {
		id   core.EntityID
		tier int
		y    float64
	}
	keys := make([]key, 0, len(ids))
	for _, id := range ids {
		pos := w.Get(id, core.CompPosition).(*core.Position)
		keys = append(keys, key{id: id, tier: DangerTier(w, id), y: pos.Y})
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.y != b.y {
			return a.y > b.y
		}
		return a.id < b.id
	})

	out := make([]core.EntityID, len(keys))
	for i, k := range keys {
		out[i] = k.id
	}
	return out
}
