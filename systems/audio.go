package systems

import (
	"sync"

	"github.com/automoto/umbra/assets"
	"github.com/automoto/umbra/components"
	cfg "github.com/automoto/umbra/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// UpdateAudio drains the pending sound queue. With no audio context (headless
// runs, tests) requests are discarded instead of played.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)

	if audioData.Context == nil {
		audioData.Pending = audioData.Pending[:0]
		return
	}

	for _, req := range audioData.Pending {
		playSound(req.Name, req.Loop, audioData.SFXVolume)
	}
	audioData.Pending = audioData.Pending[:0]
}

func playSound(name string, loop bool, volume float64) {
	if volume <= 0 || globalAudioLoader == nil {
		return
	}

	player, err := globalAudioLoader.LoadSound(name, loop)
	if err != nil {
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// QueueSound queues a named sound effect for playback at the end of the frame.
func QueueSound(e *ecs.ECS, name string, loop bool) {
	audioData := GetOrCreateAudio(e)
	audioData.Pending = append(audioData.Pending, components.SoundRequest{Name: name, Loop: loop})
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	audioData := GetOrCreateAudio(e)
	audioData.SFXVolume = volume
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		initGlobalAudio()
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:   globalAudioContext,
			SFXVolume: globalSFXVolume,
			Pending:   make([]components.SoundRequest, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}

// WorldAudio adapts the ECS audio queue to the fire-and-forget player
// interface transition functions receive.
type WorldAudio struct {
	ECS *ecs.ECS
}

func (w WorldAudio) PlaySound(name string, loop bool) {
	QueueSound(w.ECS, name, loop)
}
