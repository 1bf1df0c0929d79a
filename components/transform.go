package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type TransformData struct {
	Position math.Vec2
	Scale    math.Vec2
}

var Transform = donburi.NewComponentType[TransformData]()
