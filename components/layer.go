package components

import (
	"github.com/automoto/umbra/engine"
	"github.com/yohamta/donburi"
)

type LayerData struct {
	ID engine.Layer
}

var Layer = donburi.NewComponentType[LayerData]()
