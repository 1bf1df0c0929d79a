package config

// HitOverride is one data-driven hit-reaction rule: when an entity of the
// given role has its collision flag set, the driver swaps its texture to
// Played, lets it run exactly one full frame cycle, then reverts to Default.
type HitOverride struct {
	Role EnemyType // EnemyNone means the rule targets the player
	// WhenDead restricts a player rule to zero health (death animation).
	WhenDead bool
	Played   string
	Default  string
}

// HitOverrides is an ordered priority list: the first rule matching an
// entity wins and later rules are not evaluated, so an entity that somehow
// qualifies for several roles has a deterministic outcome.
var HitOverrides = []HitOverride{
	{Role: EnemyPoison, Played: "poison_hit", Default: "poison_idle"},
	{Role: EnemyBoss, Played: "boss_hit", Default: "boss_idle"},
	{Role: EnemyNone, WhenDead: true, Played: "player_die", Default: "player_dead"},
	{Role: EnemyNone, Played: "player_hit", Default: "player_idle"},
}
