package component

// Transform is the centre of an entity in screen space, y pointing down.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
