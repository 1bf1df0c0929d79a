package engine

import "testing"

func TestScaledDelta(t *testing.T) {
	state := NewState()
	frame := Frame{Delta: 0.1, State: state}
	if frame.Scaled() != 0.1 {
		t.Fatalf("scaled = %v at normal speed, want 0.1", frame.Scaled())
	}

	state.TimeScale = 0.5
	if frame.Scaled() != 0.05 {
		t.Fatalf("scaled = %v at half speed, want 0.05", frame.Scaled())
	}
}

func TestNewStateDefaults(t *testing.T) {
	state := NewState()
	if !state.IsPlay() {
		t.Fatal("new state not in play mode")
	}
	if state.IsPaused() {
		t.Fatal("new state paused")
	}
	if state.TimeScale != 1 {
		t.Fatalf("time scale = %v, want 1", state.TimeScale)
	}
	for l := LayerBackground; l < layerCount; l++ {
		if !state.LayerVisible(l) {
			t.Fatalf("layer %d hidden by default", l)
		}
	}
}

func TestLayerVisibilityBounds(t *testing.T) {
	state := NewState()
	state.SetLayerVisible(LayerText, false)
	if state.LayerVisible(LayerText) {
		t.Fatal("hidden layer reported visible")
	}
	state.SetLayerVisible(LayerText, true)
	if !state.LayerVisible(LayerText) {
		t.Fatal("shown layer reported hidden")
	}

	// Out-of-range layers are visible and setting them is a no-op.
	if !state.LayerVisible(Layer(99)) || !state.LayerVisible(Layer(-1)) {
		t.Fatal("out-of-range layer not treated as visible")
	}
	state.SetLayerVisible(Layer(99), false)
	if !state.LayerVisible(Layer(99)) {
		t.Fatal("out-of-range set should be ignored")
	}
}
