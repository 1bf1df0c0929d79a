// Package leveldata provides TMX level parsing. It has no dependencies on
// ebitengine, donburi, or resolv, so scenes can load placement data freely.
package leveldata

// Level holds all placement data parsed from a TMX level file.
type Level struct {
	SolidRects  []SolidRect
	HazardRects []HazardRect
	EnemySpawns []EnemySpawn
	PlayerSpawn SpawnPoint
	MapWidth    int
	MapHeight   int
}

// SolidRect represents a solid collision tile.
type SolidRect struct {
	X, Y, W, H float64
}

// HazardRect represents a damage zone.
type HazardRect struct {
	X, Y, W, H float64
}

// EnemySpawn represents one enemy placement.
type EnemySpawn struct {
	X, Y      float64
	EnemyType string // "poison", "boss"
}

// SpawnPoint represents the player spawn location.
type SpawnPoint struct {
	X, Y float64
}
