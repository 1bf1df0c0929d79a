package components

import (
	"github.com/automoto/umbra/engine"
	"github.com/yohamta/donburi"
)

// SceneManager requests an asynchronous scene swap. Fire-and-forget: the
// request is serviced by the scene shell at the end of the frame.
type SceneManager interface {
	TransitionToScene(path string)
}

// AudioPlayer plays a named sound. Fire-and-forget.
type AudioPlayer interface {
	PlaySound(name string, loop bool)
}

// PrefabLoader spawns a configured prefab into the current world.
type PrefabLoader interface {
	LoadPrefab(name string)
}

// TransitionContext carries the collaborators a transition function may touch
// besides the entity itself. Built fresh by the timeline system each frame.
type TransitionContext struct {
	Delta   float64
	State   *engine.State
	Scenes  SceneManager
	Audio   AudioPlayer
	Prefabs PrefabLoader
}

// TransitionFunc is one pluggable timeline behavior. timer is the time spent
// in the current phase past its pre-delay.
//
// Self-re-arming contract: the function has full write access to the entity's
// TimelineData and may flip TransitioningIn or reset InternalTimer from
// either phase, creating looping or ping-ponging timelines. The engine does
// not run its own phase-completion transition on a frame where the callback
// re-armed the timeline.
type TransitionFunc func(ctx TransitionContext, entry *donburi.Entry, timer float64)

// TimelineData is the per-entity two-phase transition state machine: a
// transition-in phase followed by a transition-out phase, each gated by its
// own pre-delay and sharing Duration. When transition-out completes the
// timeline goes dormant until reactivated by tag.
type TimelineData struct {
	Active          bool
	TransitioningIn bool

	InternalTimer float64 // time in the current phase, past its pre-delay
	DelayInAccum  float64
	DelayOutAccum float64

	TransitionInDelay  float64
	TransitionOutDelay float64
	Duration           float64

	StartPosition float64
	EndPosition   float64

	// Tag groups related timelines for bulk reactivation. It is also applied
	// as an ECS tag so other systems can query by timeline role.
	Tag string

	// Configured function names, kept for rebinding when an editor changes
	// the configuration. The resolved references below are what the engine
	// invokes; no name lookup happens on the hot path.
	TransitionInName  string
	TransitionOutName string
	TransitionIn      TransitionFunc
	TransitionOut     TransitionFunc

	scratch map[string]*Scratch
}

// Scratch is private per-entity state a transition function persists across
// frames (an original font size, a played-once latch). Three slots, not
// interpreted by the engine.
type Scratch struct {
	A, B, C float64
}

// ScratchFor returns the scratch slots owned by the named function, creating
// them on first use. Keying by owner keeps unrelated functions from
// trampling each other's state on a shared timeline.
func (t *TimelineData) ScratchFor(owner string) *Scratch {
	if t.scratch == nil {
		t.scratch = make(map[string]*Scratch)
	}
	s, ok := t.scratch[owner]
	if !ok {
		s = &Scratch{}
		t.scratch[owner] = s
	}
	return s
}

// ResetScratch drops all per-function scratch state. Reactivating a timeline
// calls this so played-once latches fire again.
func (t *TimelineData) ResetScratch() {
	t.scratch = nil
}

var Timeline = donburi.NewComponentType[TimelineData]()
