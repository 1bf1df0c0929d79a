package components

import "github.com/yohamta/donburi"

// RenderableData selects what the render pass draws for an entity. TextureID
// doubles as the key into the sheet metadata table, so swapping it retargets
// both the drawn image and the animation grid.
type RenderableData struct {
	TextureID string
	Active    bool
	Alpha     float64
}

var Renderable = donburi.NewComponentType[RenderableData]()
