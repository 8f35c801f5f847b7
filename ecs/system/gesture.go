package system

import "github.com/milk9111/antivirus/ecs/component"

// DefaultSwipeThreshold is the vertical drag, in pixels, that turns a tap
// into a dimension switch.
const DefaultSwipeThreshold = 100.0

// GestureTranslator turns one pointer press into a command. Only the release
// acts; presses and moves only record where the drag started and how far it
// went vertically.
type GestureTranslator struct {
	Threshold float64

	down     bool
	initX    float64
	initY    float64
	moveAmtY float64
}

func NewGestureTranslator(threshold float64) *GestureTranslator {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &GestureTranslator{Threshold: threshold}
}

func (g *GestureTranslator) PointerDown(x, y float64) {
	g.down = true
	g.initX = x
	g.initY = y
	g.moveAmtY = 0
}

func (g *GestureTranslator) PointerMove(x, y float64) {
	if !g.down {
		return
	}
	g.moveAmtY = y - g.initY
}

// PointerUp ends the gesture at (x, y) and classifies it against the
// current dimension. An upward swipe asks for Back and a downward swipe for
// Front; a swipe towards the plane already occupied does nothing. Anything
// shorter than the threshold fires.
func (g *GestureTranslator) PointerUp(x, y float64, current component.Dimension) component.Command {
	if !g.down {
		return component.Command{}
	}
	g.PointerMove(x, y)
	g.down = false

	switch {
	case g.moveAmtY < -g.Threshold:
		if current != component.DimensionBack {
			return component.SwitchTo(component.DimensionBack)
		}
		return component.Command{}
	case g.moveAmtY > g.Threshold:
		if current != component.DimensionFront {
			return component.SwitchTo(component.DimensionFront)
		}
		return component.Command{}
	default:
		return component.Fire()
	}
}

// Active reports whether a press is in progress.
func (g *GestureTranslator) Active() bool {
	return g.down
}

// MoveAmountY is the vertical drag of the current or last gesture.
func (g *GestureTranslator) MoveAmountY() float64 {
	return g.moveAmtY
}
