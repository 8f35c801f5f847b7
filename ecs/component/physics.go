package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and the collider shape. A
// positive Radius makes a circle, otherwise Width and Height make a box.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
	Width  float64
	Height float64
}

// HalfHeight returns half the vertical extent of the shape.
func (b *PhysicsBody) HalfHeight() float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return b.Height / 2
}

// HalfWidth returns half the horizontal extent of the shape.
func (b *PhysicsBody) HalfWidth() float64 {
	if b.Radius > 0 {
		return b.Radius
	}
	return b.Width / 2
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
