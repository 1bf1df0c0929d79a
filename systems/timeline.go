package systems

import (
	"log"

	"github.com/automoto/umbra/components"
	"github.com/automoto/umbra/engine"
	"github.com/automoto/umbra/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TimelineSystem advances every active timeline through its two phases:
// a delayed transition-in followed by a delayed transition-out sharing the
// same duration. When transition-out completes, the timeline goes dormant
// until reactivated by tag.
type TimelineSystem struct {
	scenes  components.SceneManager
	audio   components.AudioPlayer
	prefabs components.PrefabLoader
}

func NewTimelineSystem(scenes components.SceneManager, audio components.AudioPlayer, prefabs components.PrefabLoader) *TimelineSystem {
	return &TimelineSystem{scenes: scenes, audio: audio, prefabs: prefabs}
}

func (s *TimelineSystem) Update(e *ecs.ECS, frame engine.Frame) {
	// Timelines only run in play mode; the editor steps the world frozen.
	if !frame.State.IsPlay() {
		return
	}

	ctx := components.TransitionContext{
		Delta:   frame.Delta,
		State:   frame.State,
		Scenes:  s.scenes,
		Audio:   s.audio,
		Prefabs: s.prefabs,
	}

	components.Timeline.Each(e.World, func(entry *donburi.Entry) {
		tl := components.Timeline.Get(entry)

		if !tl.Active {
			return
		}

		// Apply the timeline tag as an ECS tag exactly once.
		if tl.Tag != "" {
			group := tags.TimelineGroup(tl.Tag)
			if !entry.HasComponent(group) {
				entry.AddComponent(group)
			}
		}

		// Entities on hidden layers keep their state but do not advance.
		if entry.HasComponent(components.Layer) {
			layer := components.Layer.Get(entry)
			if !frame.State.LayerVisible(layer.ID) {
				return
			}
		}

		if tl.TransitioningIn {
			tl.DelayInAccum += frame.Delta
			if tl.DelayInAccum < tl.TransitionInDelay {
				return // phase timer does not advance during the pre-delay
			}

			tl.InternalTimer += frame.Delta
			if tl.TransitionIn != nil {
				tl.TransitionIn(ctx, entry, tl.InternalTimer)
			}

			// The callback may have re-armed or flipped the phase itself;
			// only run the engine's own transition if it did not.
			if tl.TransitioningIn && tl.InternalTimer >= tl.Duration {
				tl.TransitioningIn = false
				tl.InternalTimer = 0
				tl.DelayInAccum = 0
			}
		} else {
			tl.DelayOutAccum += frame.Delta
			if tl.DelayOutAccum < tl.TransitionOutDelay {
				return
			}

			tl.InternalTimer += frame.Delta
			if tl.TransitionOut != nil {
				tl.TransitionOut(ctx, entry, tl.InternalTimer)
			}

			if !tl.TransitioningIn && tl.InternalTimer >= tl.Duration {
				tl.Active = false
			}
		}
	})
}

// ToggleActive wakes every dormant timeline whose tag matches, restarting it
// from the top of transition-in. No match is a warning, not an error.
func (s *TimelineSystem) ToggleActive(w donburi.World, tag string) {
	activated := 0
	components.Timeline.Each(w, func(entry *donburi.Entry) {
		tl := components.Timeline.Get(entry)
		if tl.Tag != tag {
			return
		}
		tl.Active = true
		tl.TransitioningIn = true
		tl.InternalTimer = 0
		tl.DelayInAccum = 0
		tl.DelayOutAccum = 0
		tl.ResetScratch()
		activated++
	})
	if activated == 0 {
		log.Printf("Warning: no timeline with tag %q found to activate", tag)
		return
	}
	log.Printf("Activated %d timeline(s) with tag %q", activated, tag)
}
