package components

import (
	cfg "github.com/automoto/umbra/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Type cfg.EnemyType
}

var Enemy = donburi.NewComponentType[EnemyData]()
