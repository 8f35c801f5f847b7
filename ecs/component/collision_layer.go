package component

// CollisionLayer carries the category and contact-test masks of a body as
// derived from its Layer.
type CollisionLayer struct {
	// Category identifies the body's class and plane.
	Category uint32
	// ContactMask lists the categories this body wants contact callbacks for.
	ContactMask uint32
}

// NewCollisionLayer derives both masks from l.
func NewCollisionLayer(l Layer) *CollisionLayer {
	return &CollisionLayer{Category: CategoryFor(l), ContactMask: ContactMaskFor(l)}
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
