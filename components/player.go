package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	Health int
}

var Player = donburi.NewComponentType[PlayerData]()
