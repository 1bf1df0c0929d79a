package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/umbra/archetypes"
	"github.com/automoto/umbra/assets"
	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/fonts"
	"github.com/automoto/umbra/logic"
	"github.com/automoto/umbra/systems"
	"github.com/automoto/umbra/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// MenuScene displays the main menu: the title slides in on a timeline, a
// decoration bobs on a tween loop, and the buttons are ebitenui widgets.
type MenuScene struct {
	ecs          *ecs.ECS
	state        *engine.State
	registry     *logic.Registry
	router       *Router
	timeline     *systems.TimelineSystem
	menuUI       *ui.MenuUI
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.menuUI.UI.Update()
	ms.router.Flush()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	fonts.LoadDefaults()
	assets.LoadDir("assets/images")

	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.state = engine.NewState()
	ms.router = NewRouter(ms.sceneChanger)

	ms.registry = logic.NewRegistry()
	systems.RegisterTransitions(ms.registry)

	ms.timeline = systems.NewTimelineSystem(ms.router, systems.WorldAudio{ECS: ms.ecs}, nil)
	animation := systems.NewAnimationSystem(nil)
	render := systems.NewRenderSystem(ms.state)

	frame := func() engine.Frame {
		return engine.Frame{Delta: tickDelta, State: ms.state}
	}

	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddSystem(func(e *ecs.ECS) { animation.Update(e, frame()) })
	ms.ecs.AddSystem(func(e *ecs.ECS) { ms.timeline.Update(e, frame()) })
	ms.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateTweens(e, frame()) })

	ms.ecs.AddRenderer(cfg.Default, render.Draw)

	ms.spawnTitle()
	ms.spawnCredits()
	ms.spawnDecoration()

	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(ms.ecs, saved)
	}

	ms.menuUI = ui.NewMenuUI(
		func() { ms.router.TransitionToScene(cfg.SceneWorld) },
		func() { ms.timeline.ToggleActive(ms.ecs.World, "credits") },
		func() {
			systems.SaveCurrentSettings()
			os.Exit(0)
		},
	)
}

func (ms *MenuScene) spawnTitle() {
	SpawnTimeline(ms.ecs, ms.registry, cfg.TimelineDef{
		Tag:      "title",
		In:       "SlideInElastic",
		Out:      "FadeOut",
		Duration: 1.5,
		OutDelay: 6,
		Start:    -400,
		End:      float64(cfg.C.Width)/2 - 200,
		Y:        180,
		Texture:  "menu_title",
	})
}

// spawnCredits creates the dormant credits crawl; the CREDITS button wakes it
// by tag and CreditsY loops it until the scene changes.
func (ms *MenuScene) spawnCredits() {
	SpawnTimeline(ms.ecs, ms.registry, cfg.TimelineDef{
		Tag:      "credits",
		In:       "CreditsY",
		Out:      "FadeOut",
		Duration: 8,
		Start:    float64(cfg.C.Height) + 40,
		End:      -200,
		X:        float64(cfg.C.Width)/2 - 160,
		Y:        float64(cfg.C.Height) + 40,
		Text:     "a game by the umbra team",
		FontSize: 20,
		Inactive: true,
	})
}

// spawnDecoration is a bobbing sprite on a gween loop, independent of the
// timeline machinery.
func (ms *MenuScene) spawnDecoration() {
	entry := archetypes.Banner.Spawn(ms.ecs, components.Tween, components.Animation)

	baseY := float64(cfg.C.Height) - 260
	components.Transform.SetValue(entry, components.TransformData{
		Position: dmath.Vec2{X: float64(cfg.C.Width) - 220, Y: baseY},
	})
	components.Renderable.SetValue(entry, components.RenderableData{
		TextureID: "player_idle",
		Active:    true,
		Alpha:     1,
	})
	components.Layer.SetValue(entry, components.LayerData{ID: engine.LayerBackground})
	components.Timeline.SetValue(entry, components.TimelineData{})
	components.Animation.SetValue(entry, components.AnimationData{})

	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(baseY), float32(baseY-24), 2, ease.InOutQuad),
		gween.New(float32(baseY-24), float32(baseY), 2, ease.InOutQuad),
	)
	components.Tween.Set(entry, tw)
}
