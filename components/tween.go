package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives decorative motion (patrolling enemies, drifting menu
// backdrops) along a gween sequence on the Y axis.
var Tween = donburi.NewComponentType[gween.Sequence]()
