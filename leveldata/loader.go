package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into level placement data. It takes an fs.FS so
// callers can pass os.DirFS or a test fixture FS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	// Parse solid tiles from the solids layer
	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != "solids" {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				level.SolidRects = append(level.SolidRects, SolidRect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Hazards":
			for _, o := range og.Objects {
				level.HazardRects = append(level.HazardRects, HazardRect{
					X: o.X, Y: o.Y, W: o.Width, H: o.Height,
				})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					X:         o.X,
					Y:         o.Y,
					EnemyType: o.Properties.GetString("enemyType"),
				})
			}
		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.PlayerSpawn = SpawnPoint{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	return level, nil
}
