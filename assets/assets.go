package assets

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// images is the texture registry keyed by texture ID. Renderables hold IDs,
// not image pointers, so a texture can be replaced at runtime without
// touching entities.
var images = map[string]*ebiten.Image{}

// Register installs or replaces a texture under the given ID.
func Register(id string, img *ebiten.Image) {
	images[id] = img
}

// Lookup returns the texture for an ID, or nil when nothing is registered.
// Callers draw a placeholder for nil.
func Lookup(id string) *ebiten.Image {
	return images[id]
}

// LoadImage reads a single image from disk and registers it under id.
func LoadImage(id, path string) error {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return err
	}
	Register(id, img)
	return nil
}

// LoadDir registers every .png in dir under its base name (without
// extension). A missing directory is not an error; the render pass falls
// back to placeholders.
func LoadDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Warning: Could not read image directory %s: %v", dir, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".png") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".png")
		if err := LoadImage(id, filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("Warning: Could not load image %s: %v", entry.Name(), err)
		}
	}
}
