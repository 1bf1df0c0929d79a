package systems

import (
	"github.com/automoto/umbra/components"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PopupSpawner spawns a floating damage callout at a world position.
type PopupSpawner interface {
	SpawnPopup(e *ecs.ECS, content string, x, y float64)
}

// CombatSystem applies contact damage on the rising edge of a collision so a
// sustained overlap hits once, not every frame. The hit reaction animation
// itself is driven off the level-triggered flag by the animation system.
type CombatSystem struct {
	popups PopupSpawner
}

func NewCombatSystem(popups PopupSpawner) *CombatSystem {
	return &CombatSystem{popups: popups}
}

func (s *CombatSystem) Update(e *ecs.ECS, frame engine.Frame) {
	if frame.State.IsPaused() || !frame.State.IsPlay() {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		col := components.Collision.Get(entry)
		if !col.Collided || col.Prev {
			return
		}

		player := components.Player.Get(entry)
		if player.Health <= 0 {
			return
		}
		player.Health--
		QueueSound(e, "hit", false)

		if s.popups != nil && entry.HasComponent(components.Transform) {
			transform := components.Transform.Get(entry)
			s.popups.SpawnPopup(e, "-1", transform.Position.X, transform.Position.Y-20)
		}
	})
}
