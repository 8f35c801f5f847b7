package component

// DimensionState is the plane the player currently occupies. It lives on the
// scene entity; there is one per world.
type DimensionState struct {
	Current Dimension
}

var DimensionStateComponent = NewComponent[DimensionState]()

// Score counts enemies destroyed by projectiles.
type Score struct {
	Collisions int
}

var ScoreComponent = NewComponent[Score]()

// Playfield is the visible area entities spawn into and leave from.
type Playfield struct {
	Width  float64
	Height float64
}

var PlayfieldComponent = NewComponent[Playfield]()
