package systems

import (
	"github.com/hordekit/horde-engine/engine/core"
)

// AnimationSystem advances animation frames at each entity's current rate
type AnimationSystem struct{}

func (s *AnimationSystem) Priority() int { return 60 }

func (s *AnimationSystem) Update(w *core.World, dt float64) {
	for _, id := range w.Query(core.CompAnim) {
		anim := w.Get(id, core.CompAnim).(*core.AnimState)

		if anim.Finished || anim.Speed <= 0 || anim.Frames <= 0 {
			continue
		}

		anim.Timer += dt
		frameDur := 1.0 / anim.Speed
		for anim.Timer >= frameDur {
			anim.Timer -= frameDur
			anim.Frame++
			if anim.Frame >= anim.Frames {
				if anim.Loop {
					anim.Frame = 0
				} else {
					anim.Finished = true
					anim.Frame = anim.Frames - 1
					break
				}
			}
		}
	}
}
