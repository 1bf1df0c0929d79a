package assets

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	cfg "github.com/automoto/umbra/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	sfxCache map[string][]byte // Cache decoded audio bytes keyed by sound name
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

// LoadSound returns a fresh player for the named sound, decoding and caching
// the raw PCM on first use. Names resolve to <sfx dir>/<name>.wav, falling
// back to .ogg.
func (l *AudioLoader) LoadSound(name string, loop bool) (*audio.Player, error) {
	decoded, err := l.decode(name)
	if err != nil {
		return nil, err
	}

	if loop {
		reader := bytes.NewReader(decoded)
		stream := audio.NewInfiniteLoop(reader, int64(len(decoded)))
		return l.context.NewPlayer(stream)
	}
	return l.context.NewPlayer(bytes.NewReader(decoded))
}

func (l *AudioLoader) decode(name string) ([]byte, error) {
	if cached, ok := l.sfxCache[name]; ok {
		return cached, nil
	}

	for _, ext := range []string{".wav", ".ogg"} {
		path := filepath.Join(cfg.Audio.SFXDir, name+ext)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var stream io.Reader
		switch ext {
		case ".wav":
			stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		case ".ogg":
			stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}

		decoded, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read decoded audio %s: %w", path, err)
		}

		l.sfxCache[name] = decoded
		return decoded, nil
	}

	return nil, fmt.Errorf("no audio file found for %q", name)
}
