package system

import (
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/prefabs"
)

// PointerState is one frame's sample of the primary pointer.
type PointerState struct {
	X       float64
	Y       float64
	Pressed bool
}

// Shortcuts are keyboard stand-ins for gestures, sampled as just-pressed.
type Shortcuts struct {
	SwitchBack  bool
	SwitchFront bool
	Fire        bool
}

// PointerSource is polled once per frame. The game wires it to ebiten's
// mouse and touch state.
type PointerSource interface {
	Pointer() PointerState
	Shortcuts() Shortcuts
}

// InputSystem samples the pointer, runs it through the gesture translator
// and queues the resulting commands. The swipe threshold follows
// Specs.Scene.SwipeThreshold, so a prefab reload applies to the next gesture.
type InputSystem struct {
	Source     PointerSource
	Translator *GestureTranslator
	Specs      *prefabs.Specs

	wasPressed bool
}

func NewInputSystem(source PointerSource, specs *prefabs.Specs) *InputSystem {
	s := &InputSystem{Source: source, Translator: NewGestureTranslator(DefaultSwipeThreshold), Specs: specs}
	s.syncThreshold()
	return s
}

func (s *InputSystem) syncThreshold() {
	if s.Specs == nil || s.Specs.Scene.SwipeThreshold <= 0 {
		return
	}
	s.Translator.Threshold = s.Specs.Scene.SwipeThreshold
}

func (s *InputSystem) Update(w *ecs.World) {
	if w == nil || s.Source == nil {
		return
	}

	current := entity.CurrentDimension(w)
	p := s.Source.Pointer()
	if !s.Translator.Active() {
		s.syncThreshold()
	}

	switch {
	case p.Pressed && !s.wasPressed:
		s.Translator.PointerDown(p.X, p.Y)
	case p.Pressed && s.wasPressed:
		s.Translator.PointerMove(p.X, p.Y)
	case !p.Pressed && s.wasPressed:
		s.push(w, s.Translator.PointerUp(p.X, p.Y, current))
	}
	s.wasPressed = p.Pressed

	keys := s.Source.Shortcuts()
	switch {
	case keys.SwitchBack && current != component.DimensionBack:
		s.push(w, component.SwitchTo(component.DimensionBack))
	case keys.SwitchFront && current != component.DimensionFront:
		s.push(w, component.SwitchTo(component.DimensionFront))
	}
	if keys.Fire {
		s.push(w, component.Fire())
	}
}

func (s *InputSystem) push(w *ecs.World, cmd component.Command) {
	if cmd.Kind == component.CommandNone {
		return
	}
	w.Events().Push(ecs.Event{Type: ecs.EventCommand, Data: cmd})
}
