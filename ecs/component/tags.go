package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type ProjectileTag struct{}

var ProjectileTagComponent = NewComponent[ProjectileTag]()

// DimensionalTag marks entities whose opacity follows the scene dimension.
type DimensionalTag struct{}

var DimensionalTagComponent = NewComponent[DimensionalTag]()

type SceneTag struct{}

var SceneTagComponent = NewComponent[SceneTag]()
