package config

import (
	"github.com/yohamta/donburi/ecs"
)

// Default is the donburi render layer every entity is created on.
const Default ecs.LayerID = 0

// EnemyType distinguishes enemy roles for animation override rules.
type EnemyType int

const (
	EnemyNone EnemyType = iota
	EnemyPoison
	EnemyBoss
)

// Scene paths, the stable identifiers handed to TransitionToScene. They name
// scene configuration files the way the editor writes them; the scene shell
// maps them back to constructors.
const (
	SceneMenu  = "scenes/menu.json"
	SceneWorld = "scenes/world.json"
)

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// ArcConfig parameterizes the circular slide-in transition.
type ArcConfig struct {
	Radius float64
	BaseY  float64
}

// AudioConfig contains audio configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	SFXDir        string
}

var C *Config
var Arc ArcConfig
var Audio AudioConfig

func init() {
	C = &Config{
		Width:  1600,
		Height: 900,
	}

	Arc = ArcConfig{
		Radius: 500.0,
		BaseY:  600.0,
	}

	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		SFXDir:        "assets/audio",
	}
}
