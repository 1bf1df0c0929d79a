package engine

// Mode selects whether gameplay systems advance. Editor tooling runs the
// world in ModeEdit, where timelines are frozen.
type Mode int

const (
	ModeEdit Mode = iota
	ModePlay
)

// Layer identifies a render layer. Layer visibility can be toggled
// externally (editor panels) to hide whole groups of entities.
type Layer int

const (
	LayerBackground Layer = iota
	LayerWorld
	LayerText
	LayerOverlay

	layerCount
)

// State is the engine-wide mutable state shared by systems and transition
// functions: pause flag, global time scale, and layer visibility. The frame
// loop is single-threaded, so there is exactly one writer at a time; anyone
// replacing the scheduler with a concurrent one must serialize access.
type State struct {
	Mode      Mode
	Paused    bool
	Slowed    bool
	TimeScale float64

	layerHidden [layerCount]bool
}

// NewState returns engine state in play mode with normal time scale and all
// layers visible.
func NewState() *State {
	return &State{Mode: ModePlay, TimeScale: 1.0}
}

func (s *State) IsPlay() bool {
	return s.Mode == ModePlay
}

func (s *State) IsPaused() bool {
	return s.Paused
}

// LayerVisible reports whether a layer is currently shown. Unknown layers
// are treated as visible.
func (s *State) LayerVisible(l Layer) bool {
	if l < 0 || l >= layerCount {
		return true
	}
	return !s.layerHidden[l]
}

func (s *State) SetLayerVisible(l Layer, visible bool) {
	if l < 0 || l >= layerCount {
		return
	}
	s.layerHidden[l] = !visible
}

// Frame is the per-tick context injected into every system update. A fresh
// Frame is built each tick; State is the shared engine state it points at.
type Frame struct {
	Delta float64
	State *State
}

// Scaled returns the frame delta adjusted by the global time scale. Gameplay
// systems (animation) advance on scaled time; UI timelines advance on raw
// Delta so a time-slow effect cannot stall its own transition.
func (f Frame) Scaled() float64 {
	return f.Delta * f.State.TimeScale
}
