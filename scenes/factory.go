package scenes

import (
	"github.com/automoto/umbra/archetypes"
	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/logic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnTimeline instantiates one timeline prefab definition: a banner when it
// names a texture, a text popup when it carries text. Function names are
// resolved against the registry once, at spawn.
func SpawnTimeline(e *ecs.ECS, reg *logic.Registry, def cfg.TimelineDef) *donburi.Entry {
	var entry *donburi.Entry
	if def.Text != "" {
		entry = archetypes.TextPopup.Spawn(e)
		components.Text.SetValue(entry, components.TextData{
			Content:  def.Text,
			FontSize: def.FontSize,
		})
		components.Layer.SetValue(entry, components.LayerData{ID: engine.LayerText})
	} else {
		entry = archetypes.Banner.Spawn(e)
		components.Layer.SetValue(entry, components.LayerData{ID: engine.LayerOverlay})
	}

	// The transition function drives one axis from Start; the other axis
	// holds its static placement.
	x, y := def.X, def.Y
	if x == 0 {
		x = def.Start
	}
	components.Transform.SetValue(entry, components.TransformData{
		Position: dmath.Vec2{X: x, Y: y},
	})
	components.Renderable.SetValue(entry, components.RenderableData{
		TextureID: def.Texture,
		Active:    true,
		Alpha:     1,
	})

	tl := components.TimelineData{
		Active:             !def.Inactive,
		TransitioningIn:    true,
		TransitionInDelay:  def.InDelay,
		TransitionOutDelay: def.OutDelay,
		Duration:           def.Duration,
		StartPosition:      def.Start,
		EndPosition:        def.End,
		Tag:                def.Tag,
		TransitionInName:   def.In,
		TransitionOutName:  def.Out,
	}
	reg.Bind(&tl)
	components.Timeline.SetValue(entry, tl)

	return entry
}

// popupSpawner adapts SpawnTimeline to the combat system's callout hook.
type popupSpawner struct {
	reg *logic.Registry
}

func (p popupSpawner) SpawnPopup(e *ecs.ECS, content string, x, y float64) {
	entry := SpawnTimeline(e, p.reg, cfg.TimelineDef{
		Tag:      "popup",
		In:       "TextPopUp",
		Out:      "TextPopUpFlyOut",
		Duration: 1.2,
		Start:    x,
		End:      x,
		Text:     content,
		FontSize: 18,
	})
	transform := components.Transform.Get(entry)
	transform.Position = dmath.Vec2{X: x, Y: y}
}

// RebindTimelines re-resolves every timeline's function names against the
// registry. Called after a config hot reload.
func RebindTimelines(w donburi.World, reg *logic.Registry) {
	components.Timeline.Each(w, func(entry *donburi.Entry) {
		tl := components.Timeline.Get(entry)
		reg.Bind(tl)
	})
}
