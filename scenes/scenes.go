package scenes

import (
	"log"

	cfg "github.com/automoto/umbra/config"
)

// tickDelta is the fixed timestep, matching ebiten's default 60 TPS.
const tickDelta = 1.0 / 60.0

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Router resolves scene paths to constructors and defers the swap to the end
// of the frame. Transition functions request swaps mid-update; changing the
// scene under a running ECS iteration would pull the world out from under it.
type Router struct {
	changer SceneChanger
	onLeave func()
	pending string
}

func NewRouter(sc SceneChanger) *Router {
	return &Router{changer: sc}
}

// OnLeave registers a cleanup hook that runs right before the scene swap, so
// the outgoing scene can release watchers and other background resources.
func (r *Router) OnLeave(fn func()) {
	r.onLeave = fn
}

// TransitionToScene records a scene request. The first request in a frame
// wins; duplicates from multiple completing timelines are dropped.
func (r *Router) TransitionToScene(path string) {
	if r.pending == "" {
		r.pending = path
	}
}

// Flush services a pending request, if any. Called once per frame after the
// ECS update.
func (r *Router) Flush() {
	if r.pending == "" {
		return
	}
	path := r.pending
	r.pending = ""

	var next interface{}
	switch path {
	case cfg.SceneMenu:
		next = NewMenuScene(r.changer)
	case cfg.SceneWorld:
		next = NewWorldScene(r.changer)
	default:
		log.Printf("Warning: unknown scene path %q", path)
		return
	}

	if r.onLeave != nil {
		r.onLeave()
	}
	r.changer.ChangeScene(next)
}
