package component

// Motion moves an entity in a straight line from (FromX, FromY) to
// (ToX, ToY) over Duration seconds. The motion dies with its entity, so a
// removed entity never sees its completion.
type Motion struct {
	FromX    float64
	FromY    float64
	ToX      float64
	ToY      float64
	Duration float64
	Elapsed  float64
	// RemoveOnArrival destroys the entity once the target is reached.
	RemoveOnArrival bool
}

var MotionComponent = NewComponent[Motion]()
