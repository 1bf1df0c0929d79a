package systems

import (
	"github.com/automoto/umbra/components"
	"github.com/automoto/umbra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions syncs resolv objects to their transforms and refreshes
// each entity's contact flag. The flag is level-triggered: it stays set for
// as long as the overlap lasts, and the animation driver reads it to decide
// when a hit reaction plays.
func UpdateCollisions(e *ecs.ECS) {
	for entry := range components.Object.Iter(e.World) {
		obj := components.Object.Get(entry)
		if obj.Object == nil {
			continue
		}
		if entry.HasComponent(components.Transform) {
			transform := components.Transform.Get(entry)
			obj.X = transform.Position.X
			obj.Y = transform.Position.Y
		}
		obj.Update()
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		refreshContact(entry, tags.ResolvHazard, tags.ResolvEnemy)
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		refreshContact(entry, tags.ResolvPlayer)
	})
}

func refreshContact(entry *donburi.Entry, against ...string) {
	if !entry.HasComponent(components.Collision) || !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	col := components.Collision.Get(entry)
	col.Prev = col.Collided
	if obj.Object == nil {
		col.Collided = false
		return
	}
	col.Collided = obj.Check(0, 0, against...) != nil
}
