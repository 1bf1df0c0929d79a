package systems

import (
	"math"

	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/automoto/umbra/logic"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// Motion constants shared by the slide family.
const (
	elasticOvershoot = 1.1
	elasticDamping   = 3.0
	elasticAmplitude = 20.0

	wobbleFrequency = 10.0
	wobbleAmplitude = 20.0

	settleDamping   = 4.0
	settleFrequency = 8.0
	settleAmplitude = 15.0
	settleDuration  = 1.0

	blinkSpeed = 0.5

	textFloatSpeed = 1.5
	// Just shy of pi, so sin(progress*arc) brings the popup back to roughly
	// its original size at completion instead of exactly zero growth.
	textScaleArc = 3.125863252431

	// Off-screen run used by the boss warning banner.
	warningStartX = 960.0
	warningEndX   = -2000.0
)

// RegisterTransitions installs the built-in behavior catalog. Scenes call
// this once before binding any timeline configuration.
func RegisterTransitions(r *logic.Registry) {
	r.Register("SlideIn", slideIn)
	r.Register("SlideOut", slideIn)
	r.Register("SlideY", slideUp)
	r.Register("CreditsY", creditsScroll)
	r.Register("SlideDiag", slideDiagonal)
	r.Register("SlideInElastic", slideInElastic)
	r.Register("SlideInBounce", slideInBounce)
	r.Register("SlideInWobbly", slideInWobbly)
	r.Register("SlideInCircular", slideInCircular)
	r.Register("SlideOutWarning", slideOutWarning)
	r.Register("SlideInQuad", slideEased("SlideInQuad", ease.InOutQuad))
	r.Register("SlideInSpring", slideEased("SlideInSpring", ease.OutElastic))

	r.Register("FadeIn", fadeIn)
	r.Register("FadeOut", fadeOut)
	r.Register("FadeOutTransitionToMenu", fadeOutToMenu)
	r.Register("Blinking", blink(true))
	r.Register("BlinkingNoSpawn", blink(false))

	r.Register("TextPopUp", textPopup)
	r.Register("TextPopUpFlyOut", textPopupFlyOut)

	r.Register("SlowAbility", slowAbility)

	r.Register("TransitionToScene", sceneTrigger(cfg.SceneWorld))
	r.Register("Retry", sceneTrigger(cfg.SceneWorld))
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}

// phaseProgress normalizes time-in-phase to [0,1]. A zero or negative
// duration is a configuration error; it reads as already complete rather
// than propagating Inf into transform state.
func phaseProgress(tl *components.TimelineData, timer float64) float64 {
	if tl.Duration <= 0 {
		return 1
	}
	return math.Min(timer/tl.Duration, 1)
}

func slideIn(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.X = lerp(tl.StartPosition, tl.EndPosition, p)
}

func slideUp(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.Y = lerp(tl.StartPosition, tl.EndPosition, p)

	if p >= 1 {
		ctx.State.Paused = false
	}
}

// creditsScroll is a self-re-arming vertical slide: on completion it snaps
// back to the start and restarts transition-in, looping until deactivated.
func creditsScroll(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.Y = lerp(tl.StartPosition, tl.EndPosition, p)

	if p >= 1 {
		tl.InternalTimer = 0
		tl.TransitioningIn = true
		transform.Position.Y = tl.StartPosition
	}
}

func slideDiagonal(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.X = lerp(tl.StartPosition, tl.EndPosition, p)
	transform.Position.Y = lerp(tl.StartPosition/1.77, tl.EndPosition/1.77, p)

	if p >= 1 {
		ctx.State.Paused = false
	}
}

func slideInElastic(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	bounce := math.Exp(-elasticDamping*p) * math.Sin(elasticOvershoot*math.Pi*p)
	transform.Position.X = lerp(tl.StartPosition, tl.EndPosition, p) + bounce*elasticAmplitude
}

// slideInBounce slides linearly, then settles with a damped oscillation at
// the target. It holds its phase open past the configured duration until the
// settle finishes (see the self-re-arming contract on TransitionFunc).
func slideInBounce(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.X = lerp(tl.StartPosition, tl.EndPosition, p)

	if p < 1 {
		return
	}

	s := tl.ScratchFor("SlideInBounce")
	settleTime := s.A
	factor := math.Exp(-settleDamping*settleTime) * math.Sin(settleFrequency*math.Pi*settleTime)
	transform.Position.X = tl.EndPosition + factor*settleAmplitude
	s.A += ctx.Delta

	if settleTime > settleDuration {
		tl.TransitioningIn = false
		tl.InternalTimer = 0
		tl.DelayInAccum = 0
		s.A = 0
		ctx.State.Paused = false
		return
	}

	// Keep the phase from completing while the settle plays out.
	tl.InternalTimer = tl.Duration - ctx.Delta
}

func slideInWobbly(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	wobble := math.Sin(p*wobbleFrequency) * (1 - p) * wobbleAmplitude
	transform.Position.X = lerp(tl.StartPosition, tl.EndPosition, p) + wobble

	if p >= 1 {
		ctx.State.Paused = false
	}
}

// slideInCircular sweeps a quarter circle from above the target down onto it.
func slideInCircular(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	centerX := float64(cfg.C.Width) / 2
	angle := p * (math.Pi / 2)

	transform.Position.X = centerX + cfg.Arc.Radius*math.Cos(angle)
	transform.Position.Y = cfg.Arc.BaseY + cfg.Arc.Radius*math.Sin(angle)

	if p >= 1 {
		ctx.State.Paused = false
	}
}

// slideOutWarning runs the boss warning banner across and off the screen,
// then loads the boss health bar prefab and flips itself to the out phase.
func slideOutWarning(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) {
		return
	}
	transform := components.Transform.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	transform.Position.X = lerp(warningStartX, warningEndX, p)

	if p < 1 {
		return
	}

	s := tl.ScratchFor("SlideOutWarning")
	if s.A == 0 {
		if ctx.Prefabs != nil {
			ctx.Prefabs.LoadPrefab("boss_bar")
		}
		s.A = 1
	}

	if tl.TransitioningIn {
		tl.TransitioningIn = false
		tl.InternalTimer = 0
		tl.DelayInAccum = 0
	} else {
		tl.Active = false
	}
}

// slideEased adapts a gween easing curve to the slide contract.
func slideEased(name string, fn ease.TweenFunc) components.TransitionFunc {
	return func(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
		if !entry.HasComponent(components.Transform) {
			return
		}
		transform := components.Transform.Get(entry)
		tl := components.Timeline.Get(entry)

		duration := tl.Duration
		if duration <= 0 {
			transform.Position.X = tl.EndPosition
			return
		}
		t := math.Min(timer, duration)
		transform.Position.X = float64(fn(
			float32(t),
			float32(tl.StartPosition),
			float32(tl.EndPosition-tl.StartPosition),
			float32(duration),
		))
	}
}

func fadeIn(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Renderable) {
		return
	}
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	render.Alpha = clamp01(phaseProgress(tl, timer))
}

func fadeOut(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Renderable) {
		return
	}
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	render.Alpha = clamp01(1 - p)

	if p >= 1 {
		render.Active = false
	}
}

func fadeOutToMenu(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Renderable) {
		return
	}
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	render.Alpha = clamp01(1 - p)

	if p >= 1 && ctx.Scenes != nil {
		ctx.Scenes.TransitionToScene(cfg.SceneMenu)
	}
}

// blink pulses alpha on a sine wave, independent of the progress gate. A
// separate scratch timer stops the blink once the configured duration has
// elapsed, optionally spawning the boss bar prefab first.
func blink(spawn bool) components.TransitionFunc {
	return func(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
		if !entry.HasComponent(components.Renderable) {
			return
		}
		render := components.Renderable.Get(entry)
		tl := components.Timeline.Get(entry)

		render.Alpha = 0.5 + 0.5*math.Sin(blinkSpeed*timer*math.Pi)

		if !tl.TransitioningIn {
			return
		}
		s := tl.ScratchFor("Blinking")
		s.A += ctx.Delta
		if s.A >= tl.Duration {
			if spawn && ctx.Prefabs != nil {
				ctx.Prefabs.LoadPrefab("boss_bar")
			}
			tl.TransitioningIn = false
			tl.InternalTimer = 0
			tl.DelayInAccum = 0
			render.Alpha = 0
		}
	}
}

// textPopup floats text upward while its font size swells toward 1.5x and
// returns, fading out; the renderable (not the entity) is disabled at the end.
func textPopup(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) ||
		!entry.HasComponent(components.Text) ||
		!entry.HasComponent(components.Renderable) {
		return
	}
	transform := components.Transform.Get(entry)
	text := components.Text.Get(entry)
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)

	transform.Position.Y -= textFloatSpeed * (1 - p)

	s := tl.ScratchFor("TextPopUp")
	if s.A == 0 {
		s.A = text.FontSize       // original size
		s.B = text.FontSize * 1.5 // peak size
	}
	scale := math.Sin(p * textScaleArc)
	text.FontSize = lerp(s.A, s.B, scale)

	render.Alpha = clamp01(1 - p)

	if p >= 1 {
		render.Active = false
	}
}

// textPopupFlyOut floats text upward while shrinking it to 75% and fading.
func textPopupFlyOut(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Transform) ||
		!entry.HasComponent(components.Text) ||
		!entry.HasComponent(components.Renderable) {
		return
	}
	transform := components.Transform.Get(entry)
	text := components.Text.Get(entry)
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)

	transform.Position.Y -= textFloatSpeed * (1 - p)

	s := tl.ScratchFor("TextPopUpFlyOut")
	if s.A == 0 {
		s.A = text.FontSize
	}
	text.FontSize = lerp(s.A, s.A*0.75, p)

	render.Alpha = clamp01(1 - p)
}

// slowAbility ramps the global time scale down to half speed, holds, then
// smoothsteps back to normal, driving a vignette's alpha in step. Sound
// triggers latch in scratch slots so they fire once per activation.
func slowAbility(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
	if !entry.HasComponent(components.Renderable) {
		return
	}
	render := components.Renderable.Get(entry)
	tl := components.Timeline.Get(entry)

	p := phaseProgress(tl, timer)
	ctx.State.Slowed = true

	s := tl.ScratchFor("SlowAbility")
	if s.B == 0 {
		if ctx.Audio != nil {
			ctx.Audio.PlaySound("time_slow", false)
		}
		s.B = 1
	}

	switch {
	case p < 0.25:
		// Ramp down from 1.0 to 0.5 over the first quarter.
		t := p / 0.25
		ctx.State.TimeScale = 1.0 - 0.5*t
		render.Alpha = 0.5 * t
	case p < 0.75:
		ctx.State.TimeScale = 0.5
		render.Alpha = 0.5
	default:
		if s.A == 0 {
			if ctx.Audio != nil {
				ctx.Audio.PlaySound("time_resume", false)
			}
			s.A = 1
		}
		// Smoothstep back to full speed over the last quarter.
		t := (p - 0.75) / 0.25
		t = t * t * (3.0 - 2.0*t)
		ctx.State.TimeScale = 0.5 + 0.5*t
		render.Alpha = 0.5 * (1 - t)
	}

	if p >= 1 {
		ctx.State.TimeScale = 1.0
		ctx.State.Slowed = false
		render.Alpha = 0
		render.Active = false
	}
}

// sceneTrigger is a pure side-effect behavior: it requests a scene swap once
// the phase completes and otherwise leaves the entity alone.
func sceneTrigger(path string) components.TransitionFunc {
	return func(ctx components.TransitionContext, entry *donburi.Entry, timer float64) {
		tl := components.Timeline.Get(entry)
		if phaseProgress(tl, timer) >= 1 && ctx.Scenes != nil {
			ctx.Scenes.TransitionToScene(path)
		}
	}
}
