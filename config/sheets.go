package config

// SheetDef describes one sprite-sheet grid: how many columns and rows of
// frames it holds and how fast playback advances, in frames per second.
type SheetDef struct {
	Cols  int     `yaml:"cols"`
	Rows  int     `yaml:"rows"`
	Speed float64 `yaml:"speed"`
}

// Sheets maps a texture identifier to its grid metadata. The animation
// driver copies these values into each entity's animation state every frame;
// identifiers missing from the table fall back to a static 1x1 frame.
var Sheets = map[string]SheetDef{
	"player_idle": {Cols: 4, Rows: 2, Speed: 8},
	"player_hit":  {Cols: 3, Rows: 1, Speed: 12},
	"player_die":  {Cols: 5, Rows: 2, Speed: 10},
	"player_dead": {Cols: 1, Rows: 1, Speed: 0},

	"poison_idle": {Cols: 4, Rows: 1, Speed: 6},
	"poison_hit":  {Cols: 4, Rows: 1, Speed: 10},

	"boss_idle": {Cols: 6, Rows: 2, Speed: 8},
	"boss_hit":  {Cols: 4, Rows: 2, Speed: 12},

	"warning_banner": {Cols: 1, Rows: 1, Speed: 0},
	"boss_bar":       {Cols: 1, Rows: 1, Speed: 0},
	"slow_vignette":  {Cols: 1, Rows: 1, Speed: 0},
	"menu_title":     {Cols: 1, Rows: 1, Speed: 0},
}
