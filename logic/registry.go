// Package logic owns the catalog of named timeline behaviors. Functions are
// registered once at startup and resolved into typed references when a
// timeline is configured, so no name lookup happens per frame.
package logic

import (
	"log"

	"github.com/automoto/umbra/components"
)

type Registry struct {
	funcs map[string]components.TransitionFunc
}

func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]components.TransitionFunc)}
}

// Register adds a named behavior. Re-registering a name replaces it, which
// is what a hot-reloaded catalog wants.
func (r *Registry) Register(name string, fn components.TransitionFunc) {
	r.funcs[name] = fn
}

func (r *Registry) Lookup(name string) (components.TransitionFunc, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// All returns a copy of the catalog, for the editor's function picker.
func (r *Registry) All() map[string]components.TransitionFunc {
	out := make(map[string]components.TransitionFunc, len(r.funcs))
	for name, fn := range r.funcs {
		out[name] = fn
	}
	return out
}

// Bind resolves the timeline's configured function names into callable
// references. An unknown name leaves the slot nil: the phase timer still
// runs, the behavior is just skipped.
func (r *Registry) Bind(tl *components.TimelineData) {
	tl.TransitionIn = r.resolve(tl.TransitionInName)
	tl.TransitionOut = r.resolve(tl.TransitionOutName)
}

func (r *Registry) resolve(name string) components.TransitionFunc {
	if name == "" {
		return nil
	}
	fn, ok := r.funcs[name]
	if !ok {
		log.Printf("Warning: transition function %q is not registered", name)
		return nil
	}
	return fn
}
