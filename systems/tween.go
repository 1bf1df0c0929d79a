package systems

import (
	"github.com/automoto/umbra/components"
	"github.com/automoto/umbra/engine"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances gween sequences and applies them to the owning
// entity's vertical position (floating menu decorations). Sequences loop.
func UpdateTweens(e *ecs.ECS, frame engine.Frame) {
	if frame.State.IsPaused() {
		return
	}

	for entry := range components.Tween.Iter(e.World) {
		if !entry.HasComponent(components.Transform) {
			continue
		}
		seq := components.Tween.Get(entry)
		transform := components.Transform.Get(entry)

		y, _, done := seq.Update(float32(frame.Scaled()))
		transform.Position.Y = float64(y)
		if done {
			seq.Reset()
		}
	}
}
