package systems

import (
	"github.com/automoto/umbra/engine"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// InputSystem maps global hotkeys onto engine state and timeline activation.
type InputSystem struct {
	state    *engine.State
	timeline *TimelineSystem
}

func NewInputSystem(state *engine.State, timeline *TimelineSystem) *InputSystem {
	return &InputSystem{state: state, timeline: timeline}
}

func (s *InputSystem) Update(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.state.Paused = !s.state.Paused
	}

	// Time-slow ability: reactivates the slow vignette timeline group.
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) && !s.state.Slowed {
		s.timeline.ToggleActive(e.World, "slow")
	}

	// Layer visibility toggles, mainly for poking at scenes while tuning.
	layerKeys := map[ebiten.Key]engine.Layer{
		ebiten.KeyF1: engine.LayerBackground,
		ebiten.KeyF2: engine.LayerWorld,
		ebiten.KeyF3: engine.LayerText,
		ebiten.KeyF4: engine.LayerOverlay,
	}
	for key, layer := range layerKeys {
		if inpututil.IsKeyJustPressed(key) {
			s.state.SetLayerVisible(layer, !s.state.LayerVisible(layer))
		}
	}

	// Settings hotkeys persist immediately so the next boot picks them up.
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		SetSFXVolume(e, clamp01(GetSFXVolume()-0.1))
		SaveCurrentSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		SetSFXVolume(e, clamp01(GetSFXVolume()+0.1))
		SaveCurrentSettings()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		SaveCurrentSettings()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		if s.state.Mode == engine.ModePlay {
			s.state.Mode = engine.ModeEdit
		} else {
			s.state.Mode = engine.ModePlay
		}
	}
}
