package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/antivirus/ecs/system"
)

// PointerInput feeds the input system from ebiten. The first touch wins;
// without one the left mouse button stands in for it.
type PointerInput struct {
	touchID  ebiten.TouchID
	touching bool
	lastX    float64
	lastY    float64
}

func NewPointerInput() *PointerInput {
	return &PointerInput{}
}

func (p *PointerInput) Pointer() system.PointerState {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			// TouchPosition is zero after release; report where it lifted.
			return system.PointerState{X: p.lastX, Y: p.lastY}
		}
		p.sampleTouch()
		return system.PointerState{X: p.lastX, Y: p.lastY, Pressed: true}
	}

	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		p.touchID = ids[0]
		p.touching = true
		p.sampleTouch()
		return system.PointerState{X: p.lastX, Y: p.lastY, Pressed: true}
	}

	x, y := ebiten.CursorPosition()
	return system.PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
}

func (p *PointerInput) sampleTouch() {
	x, y := ebiten.TouchPosition(p.touchID)
	p.lastX, p.lastY = float64(x), float64(y)
}

func (p *PointerInput) Shortcuts() system.Shortcuts {
	return system.Shortcuts{
		SwitchBack:  inpututil.IsKeyJustPressed(ebiten.KeyUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		SwitchFront: inpututil.IsKeyJustPressed(ebiten.KeyDown) || inpututil.IsKeyJustPressed(ebiten.KeyS),
		Fire:        inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
}
