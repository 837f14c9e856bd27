package systems

import (
	"github.com/hordekit/horde-engine/engine/core"
)

// StatusSystem decays every entity's timed effects. It runs before any other
// system so stat lookups within the tick see the current decay state.
type StatusSystem struct{}

func (s *StatusSystem) Priority() int { return 5 }

func (s *StatusSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompStatus) {
		w.Get(id, core.CompStatus).(*core.Status).Update(dt)
	}
}
