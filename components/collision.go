package components

import "github.com/yohamta/donburi"

// CollisionData is the per-frame contact flag the collision system maintains
// and the animation driver consumes to trigger hit-reaction overrides. Prev
// holds last frame's flag so consumers can detect contact edges.
type CollisionData struct {
	Collided bool
	Prev     bool
}

var Collision = donburi.NewComponentType[CollisionData]()
