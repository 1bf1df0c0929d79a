package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"
)

// SoundRequest is one queued fire-and-forget playback request.
type SoundRequest struct {
	Name string
	Loop bool
}

// AudioData stores per-world audio state (singleton component). Context may
// be nil in headless runs; pending requests are then discarded.
type AudioData struct {
	Context   *audio.Context
	SFXVolume float64
	Pending   []SoundRequest
}

var Audio = donburi.NewComponentType[AudioData]()
