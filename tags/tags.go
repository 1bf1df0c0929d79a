package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Hazard = donburi.NewTag().SetName("Hazard")
	Banner = donburi.NewTag().SetName("Banner")
)

// Resolv tags for collision queries
const (
	ResolvSolid  = "solid"
	ResolvHazard = "hazard"
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
)

// Timeline group tags are created on demand, one per timeline tag string, so
// external code can query entities by timeline role like any other ECS tag.
var timelineGroups = map[string]donburi.IComponentType{}

func TimelineGroup(name string) donburi.IComponentType {
	if t, ok := timelineGroups[name]; ok {
		return t
	}
	t := donburi.NewTag().SetName("Timeline:" + name)
	timelineGroups[name] = t
	return t
}
