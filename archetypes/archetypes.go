package archetypes

import (
	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Renderable,
		components.Animation,
		components.Collision,
		components.Object,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Transform,
		components.Renderable,
		components.Animation,
		components.Collision,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Object,
	)
	// Banner is a timeline-driven UI element (boss warnings, titles, fades).
	Banner = newArchetype(
		tags.Banner,
		components.Transform,
		components.Renderable,
		components.Timeline,
		components.Layer,
	)
	// TextPopup is a timeline-driven floating text (damage numbers, callouts).
	TextPopup = newArchetype(
		components.Transform,
		components.Renderable,
		components.Text,
		components.Timeline,
		components.Layer,
	)
	Audio = newArchetype(
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
