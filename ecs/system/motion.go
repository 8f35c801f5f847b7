package system

import (
	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
)

// MotionSystem advances straight-line motions by a fixed step and removes
// entities that asked to go on arrival. A motion lives on its entity, so an
// entity destroyed early by a collision never completes.
type MotionSystem struct {
	Step float64
}

func NewMotionSystem(step float64) *MotionSystem {
	if step <= 0 {
		step = common.FixedStep
	}
	return &MotionSystem{Step: step}
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Motion, t *component.Transform) {
		m.Elapsed += s.Step

		progress := 1.0
		if m.Duration > 0 {
			progress = common.Clamp(m.Elapsed/m.Duration, 0, 1)
		}
		t.X = common.Lerp(m.FromX, m.ToX, progress)
		t.Y = common.Lerp(m.FromY, m.ToY, progress)

		if progress < 1 {
			return
		}
		if m.RemoveOnArrival {
			ecs.DestroyEntity(w, e)
			return
		}
		ecs.Remove(w, e, component.MotionComponent.Kind())
	})
}
