package components

import (
	"github.com/yohamta/donburi"
)

// AnimationData tracks sprite-sheet playback for one entity. The grid
// dimensions and speed are copied every frame from the sheet metadata table
// keyed by the renderable's texture ID, so an external sheet swap takes
// effect immediately.
type AnimationData struct {
	Cols         int
	Rows         int
	Speed        float64 // frames per second
	PlayTime     float64
	CurrentFrame int

	// SheetKey is the texture ID this playback state belongs to. When the
	// renderable's texture ID changes out from under it, playback resets.
	SheetKey string
}

// TotalFrames returns the frame count of the active grid, never less than 1.
func (a *AnimationData) TotalFrames() int {
	total := a.Cols * a.Rows
	if total < 1 {
		return 1
	}
	return total
}

var Animation = donburi.NewComponentType[AnimationData]()
