package systems

import (
	"math"
	"testing"

	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/logic"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type fakeScenes struct {
	paths []string
}

func (f *fakeScenes) TransitionToScene(path string) {
	f.paths = append(f.paths, path)
}

type fakeAudio struct {
	played []string
}

func (f *fakeAudio) PlaySound(name string, loop bool) {
	f.played = append(f.played, name)
}

type fakePrefabs struct {
	loaded []string
}

func (f *fakePrefabs) LoadPrefab(name string) {
	f.loaded = append(f.loaded, name)
}

func testCtx(state *engine.State) components.TransitionContext {
	return components.TransitionContext{Delta: testDelta, State: state}
}

func spawnTransitionTarget(e *ecs.ECS, tl components.TimelineData) *donburi.Entry {
	entry := e.World.Entry(e.World.Create(
		components.Timeline,
		components.Transform,
		components.Renderable,
		components.Text,
	))
	components.Timeline.SetValue(entry, tl)
	components.Renderable.SetValue(entry, components.RenderableData{Active: true, Alpha: 1})
	components.Text.SetValue(entry, components.TextData{Content: "hi", FontSize: 18})
	return entry
}

func TestSlideInInterpolatesLinearly(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	entry := spawnTransitionTarget(e, components.TimelineData{
		Duration:      2,
		StartPosition: -100,
		EndPosition:   300,
	})

	slideIn(testCtx(state), entry, 1) // halfway
	transform := components.Transform.Get(entry)
	if math.Abs(transform.Position.X-100) > 1e-9 {
		t.Fatalf("x = %v at half duration, want 100", transform.Position.X)
	}

	slideIn(testCtx(state), entry, 5) // past the end clamps
	if math.Abs(transform.Position.X-300) > 1e-9 {
		t.Fatalf("x = %v past duration, want 300", transform.Position.X)
	}
}

func TestSlideVariantsLandOnTarget(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()

	variants := []struct {
		name      string
		fn        components.TransitionFunc
		tolerance float64
	}{
		// The wobble term carries a (1-p) factor and vanishes exactly; the
		// elastic term only decays, leaving a sub-pixel residue at p=1.
		{"SlideInWobbly", slideInWobbly, 1e-6},
		{"SlideInElastic", slideInElastic, elasticAmplitude * math.Exp(-elasticDamping)},
	}
	for _, v := range variants {
		entry := spawnTransitionTarget(e, components.TimelineData{
			Duration:      1,
			StartPosition: -50,
			EndPosition:   200,
		})
		v.fn(testCtx(state), entry, 1)
		transform := components.Transform.Get(entry)
		if math.Abs(transform.Position.X-200) > v.tolerance {
			t.Errorf("%s: x = %v at completion, want 200 ± %v", v.name, transform.Position.X, v.tolerance)
		}
	}
}

func TestSlideInCircularSweepsQuarterArc(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	entry := spawnTransitionTarget(e, components.TimelineData{Duration: 1})

	centerX := float64(cfg.C.Width) / 2

	slideInCircular(testCtx(state), entry, 0)
	transform := components.Transform.Get(entry)
	if math.Abs(transform.Position.X-(centerX+cfg.Arc.Radius)) > 1e-9 {
		t.Fatalf("arc start x = %v, want %v", transform.Position.X, centerX+cfg.Arc.Radius)
	}
	if math.Abs(transform.Position.Y-cfg.Arc.BaseY) > 1e-9 {
		t.Fatalf("arc start y = %v, want %v", transform.Position.Y, cfg.Arc.BaseY)
	}

	slideInCircular(testCtx(state), entry, 1)
	if math.Abs(transform.Position.X-centerX) > 1e-6 {
		t.Fatalf("arc end x = %v, want %v", transform.Position.X, centerX)
	}
	if math.Abs(transform.Position.Y-(cfg.Arc.BaseY+cfg.Arc.Radius)) > 1e-6 {
		t.Fatalf("arc end y = %v, want %v", transform.Position.Y, cfg.Arc.BaseY+cfg.Arc.Radius)
	}
}

func TestFadeOutDisablesRenderable(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	entry := spawnTransitionTarget(e, components.TimelineData{Duration: 1})
	render := components.Renderable.Get(entry)

	fadeOut(testCtx(state), entry, 0.5)
	if math.Abs(render.Alpha-0.5) > 1e-9 {
		t.Fatalf("alpha = %v at half fade, want 0.5", render.Alpha)
	}
	if !render.Active {
		t.Fatal("renderable disabled before fade completed")
	}

	fadeOut(testCtx(state), entry, 1)
	if render.Alpha != 0 {
		t.Fatalf("alpha = %v at completion, want 0", render.Alpha)
	}
	if render.Active {
		t.Fatal("renderable still active after fade completed")
	}
}

func TestSlowAbilityTimeScaleCurve(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	audio := &fakeAudio{}
	ctx := components.TransitionContext{Delta: testDelta, State: state, Audio: audio}

	entry := spawnTransitionTarget(e, components.TimelineData{Duration: 1})
	render := components.Renderable.Get(entry)

	// Ramp down: p=0.1 is 40% into the first quarter.
	slowAbility(ctx, entry, 0.1)
	if math.Abs(state.TimeScale-0.8) > 1e-9 {
		t.Fatalf("time scale = %v at p=0.1, want 0.8", state.TimeScale)
	}
	if !state.Slowed {
		t.Fatal("slowed flag not set")
	}
	if len(audio.played) != 1 || audio.played[0] != "time_slow" {
		t.Fatalf("slow sound not latched once: %v", audio.played)
	}

	// Hold.
	slowAbility(ctx, entry, 0.5)
	if state.TimeScale != 0.5 {
		t.Fatalf("time scale = %v during hold, want 0.5", state.TimeScale)
	}
	if render.Alpha != 0.5 {
		t.Fatalf("vignette alpha = %v during hold, want 0.5", render.Alpha)
	}

	// Smoothstep recovery: p=0.8 gives t=0.2, smoothstep 0.104.
	slowAbility(ctx, entry, 0.8)
	want := 0.5 + 0.5*0.104
	if math.Abs(state.TimeScale-want) > 1e-9 {
		t.Fatalf("time scale = %v at p=0.8, want %v", state.TimeScale, want)
	}
	if state.TimeScale <= 0.5 || state.TimeScale >= 1 {
		t.Fatalf("recovery time scale %v not in (0.5, 1)", state.TimeScale)
	}
	if len(audio.played) != 2 || audio.played[1] != "time_resume" {
		t.Fatalf("resume sound not latched once: %v", audio.played)
	}

	// Completion restores everything.
	slowAbility(ctx, entry, 1)
	if state.TimeScale != 1 {
		t.Fatalf("time scale = %v at completion, want 1", state.TimeScale)
	}
	if state.Slowed {
		t.Fatal("slowed flag still set after completion")
	}
	if render.Alpha != 0 || render.Active {
		t.Fatal("vignette not cleared after completion")
	}

	// Sounds fire once per activation, not per frame.
	slowAbility(ctx, entry, 0.5)
	if len(audio.played) != 2 {
		t.Fatalf("sounds replayed without reactivation: %v", audio.played)
	}
}

func TestSlideOutWarningLoadsPrefabOnce(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	prefabs := &fakePrefabs{}
	ctx := components.TransitionContext{Delta: testDelta, State: state, Prefabs: prefabs}

	entry := spawnTransitionTarget(e, components.TimelineData{
		TransitioningIn: true,
		Duration:        1,
	})
	tl := components.Timeline.Get(entry)

	slideOutWarning(ctx, entry, 0.5)
	if len(prefabs.loaded) != 0 {
		t.Fatal("prefab loaded before the run completed")
	}

	slideOutWarning(ctx, entry, 1)
	if len(prefabs.loaded) != 1 || prefabs.loaded[0] != "boss_bar" {
		t.Fatalf("prefab loads = %v, want one boss_bar", prefabs.loaded)
	}
	if tl.TransitioningIn {
		t.Fatal("warning banner did not flip to transition-out")
	}

	// A second completion (now in the out phase) deactivates without
	// reloading the prefab.
	slideOutWarning(ctx, entry, 1)
	if len(prefabs.loaded) != 1 {
		t.Fatalf("prefab loaded again: %v", prefabs.loaded)
	}
	if tl.Active {
		t.Fatal("warning banner still active after out phase completed")
	}
}

func TestTextPopupSwellsAndFades(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	entry := spawnTransitionTarget(e, components.TimelineData{Duration: 1})
	text := components.Text.Get(entry)
	render := components.Renderable.Get(entry)
	transform := components.Transform.Get(entry)
	startY := transform.Position.Y

	textPopup(testCtx(state), entry, 0.5)
	if text.FontSize <= 18 {
		t.Fatalf("font size = %v mid-popup, want swollen above 18", text.FontSize)
	}
	if transform.Position.Y >= startY {
		t.Fatal("popup did not float upward")
	}
	if render.Alpha != 0.5 {
		t.Fatalf("alpha = %v mid-popup, want 0.5", render.Alpha)
	}

	textPopup(testCtx(state), entry, 1)
	if render.Active {
		t.Fatal("popup renderable still active after completion")
	}
	// sin(arc) is nearly zero at completion, so the size lands close to the
	// original.
	if math.Abs(text.FontSize-18) > 0.5 {
		t.Fatalf("font size = %v at completion, want ~18", text.FontSize)
	}
}

func TestSceneTriggerFiresOnCompletion(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	scenes := &fakeScenes{}
	ctx := components.TransitionContext{Delta: testDelta, State: state, Scenes: scenes}

	entry := spawnTransitionTarget(e, components.TimelineData{Duration: 1})
	fn := sceneTrigger(cfg.SceneWorld)

	fn(ctx, entry, 0.5)
	if len(scenes.paths) != 0 {
		t.Fatal("scene requested before completion")
	}

	fn(ctx, entry, 1)
	if len(scenes.paths) != 1 || scenes.paths[0] != cfg.SceneWorld {
		t.Fatalf("scene requests = %v, want one %s", scenes.paths, cfg.SceneWorld)
	}
}

func TestCatalogToleratesMissingComponents(t *testing.T) {
	e := newTestECS()
	state := engine.NewState()
	reg := logic.NewRegistry()
	RegisterTransitions(reg)

	// Entity with nothing but a timeline: every catalog function must skip
	// gracefully instead of panicking.
	entry := e.World.Entry(e.World.Create(components.Timeline))
	components.Timeline.SetValue(entry, components.TimelineData{
		TransitioningIn: true,
		Duration:        1,
	})

	ctx := components.TransitionContext{Delta: testDelta, State: state}
	for name, fn := range reg.All() {
		for _, timer := range []float64{0, 0.5, 1, 2} {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s panicked at timer %v: %v", name, timer, r)
					}
				}()
				fn(ctx, entry, timer)
			}()
		}
	}
}

func TestRegisterTransitionsCoversCatalog(t *testing.T) {
	reg := logic.NewRegistry()
	RegisterTransitions(reg)

	names := []string{
		"SlideIn", "SlideOut", "SlideY", "CreditsY", "SlideDiag",
		"SlideInElastic", "SlideInBounce", "SlideInWobbly", "SlideInCircular",
		"SlideOutWarning", "SlideInQuad", "SlideInSpring",
		"FadeIn", "FadeOut", "FadeOutTransitionToMenu",
		"Blinking", "BlinkingNoSpawn",
		"TextPopUp", "TextPopUpFlyOut",
		"SlowAbility", "TransitionToScene", "Retry",
	}
	for _, name := range names {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("catalog missing %q", name)
		}
	}
}
