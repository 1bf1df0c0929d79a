package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TimelineDef is one timeline prefab entry as the editor writes it: function
// names, delays, duration, and the slide endpoints.
type TimelineDef struct {
	Tag      string  `yaml:"tag"`
	In       string  `yaml:"in"`
	Out      string  `yaml:"out"`
	InDelay  float64 `yaml:"in_delay"`
	OutDelay float64 `yaml:"out_delay"`
	Duration float64 `yaml:"duration"`
	Start    float64 `yaml:"start"`
	End      float64 `yaml:"end"`
	X        float64 `yaml:"x"` // static placement on the undriven axis
	Y        float64 `yaml:"y"`
	Texture  string  `yaml:"texture"`
	Text     string  `yaml:"text"`
	FontSize float64 `yaml:"font_size"`
	Inactive bool    `yaml:"inactive"` // spawn dormant, woken by ToggleActive
}

// FileConfig is the yaml overlay an external editor maintains: extra sheet
// metadata and the timeline prefabs spawned by scenes.
type FileConfig struct {
	Sheets    map[string]SheetDef `yaml:"sheets"`
	Timelines []TimelineDef       `yaml:"timelines"`
}

// Load reads a yaml config overlay. A missing file is not an error; the
// built-in tables stand alone.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a yaml config overlay.
func Parse(data []byte) (*FileConfig, error) {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &fc, nil
}

// Apply merges the overlay's sheet metadata into the global table. Timeline
// prefabs are consumed by the scenes that spawn them.
func (fc *FileConfig) Apply() {
	for key, def := range fc.Sheets {
		Sheets[key] = def
	}
}
