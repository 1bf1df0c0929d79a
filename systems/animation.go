package systems

import (
	"log"

	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/engine"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnimationSystem keeps each animated entity's current frame in sync with
// elapsed play time and the active sheet's grid, and runs the hit-reaction
// override rules (one-shot damage/death animations that revert to a default
// loop after a single full cycle).
type AnimationSystem struct {
	sheets map[string]cfg.SheetDef
	warned map[string]bool
}

func NewAnimationSystem(sheets map[string]cfg.SheetDef) *AnimationSystem {
	if sheets == nil {
		sheets = cfg.Sheets
	}
	return &AnimationSystem{
		sheets: sheets,
		warned: make(map[string]bool),
	}
}

func (s *AnimationSystem) Update(e *ecs.ECS, frame engine.Frame) {
	if frame.State.IsPaused() {
		return
	}

	dt := frame.Scaled()

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Renderable) {
			return
		}
		render := components.Renderable.Get(entry)
		anim := components.Animation.Get(entry)

		s.syncSheet(render, anim)

		// Hit-reaction swap happens before playback advances so the new
		// sheet's grid applies to this frame's math.
		var active *cfg.HitOverride
		if entry.HasComponent(components.Collision) {
			if rule, ok := matchOverride(entry); ok {
				collision := components.Collision.Get(entry)
				if collision.Collided && render.TextureID != rule.Played {
					render.TextureID = rule.Played
					s.syncSheet(render, anim)
				}
				if render.TextureID == rule.Played {
					active = rule
				}
			}
		}

		anim.PlayTime += dt
		anim.CurrentFrame = frameIndex(anim.PlayTime, anim.Speed, anim.TotalFrames())

		// One-shot override: revert on frame-cycle completion, not on the
		// collision flag clearing.
		if active != nil && anim.CurrentFrame >= anim.TotalFrames()-1 {
			render.TextureID = active.Default
			anim.SheetKey = active.Default
			anim.CurrentFrame = 0
			anim.PlayTime = 0
			s.syncSheet(render, anim)
		}
	})
}

// syncSheet copies the active sheet's grid into the animation state and
// resets playback when the texture ID changed out from under it.
func (s *AnimationSystem) syncSheet(render *components.RenderableData, anim *components.AnimationData) {
	def, ok := s.sheets[render.TextureID]
	if !ok {
		if !s.warned[render.TextureID] {
			log.Printf("Warning: no sheet metadata for %q, treating as static frame", render.TextureID)
			s.warned[render.TextureID] = true
		}
		def = cfg.SheetDef{Cols: 1, Rows: 1}
	}
	anim.Cols = def.Cols
	anim.Rows = def.Rows
	anim.Speed = def.Speed

	if anim.SheetKey != render.TextureID {
		anim.SheetKey = render.TextureID
		anim.PlayTime = 0
		anim.CurrentFrame = 0
	}
}

// frameIndex maps play time to a frame in [0, total). A grid of one frame
// (or a degenerate zero-dimension grid) pins to frame 0.
func frameIndex(playTime, speed float64, total int) int {
	if total <= 1 {
		return 0
	}
	return int(playTime*speed) % total
}

// matchOverride finds the first hit-override rule the entity qualifies for.
// The rule table is an ordered priority list; the first match wins.
func matchOverride(entry *donburi.Entry) (*cfg.HitOverride, bool) {
	for i := range cfg.HitOverrides {
		rule := &cfg.HitOverrides[i]
		if rule.Role != cfg.EnemyNone {
			if !entry.HasComponent(components.Enemy) {
				continue
			}
			if components.Enemy.Get(entry).Type != rule.Role {
				continue
			}
			return rule, true
		}
		if !entry.HasComponent(components.Player) {
			continue
		}
		dead := components.Player.Get(entry).Health == 0
		if rule.WhenDead != dead {
			continue
		}
		return rule, true
	}
	return nil, false
}
