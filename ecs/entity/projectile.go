package entity

import (
	"fmt"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/prefabs"
)

// NewProjectile fires a projectile from (x, y) on the scene's current
// dimension. It flies right by x*RangeFactor over the spec duration and is
// removed on arrival.
func NewProjectile(w *ecs.World, spec *prefabs.ProjectileSpec, x, y float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ProjectileTagComponent.Kind(), &component.ProjectileTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.DimensionalTagComponent.Kind(), &component.DimensionalTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: add dimensional tag: %w", err)
	}

	layer := component.Layer{Kind: component.KindProjectile, Dimension: CurrentDimension(w)}
	err := addBody(w, entity, layer,
		&component.Transform{X: x, Y: y},
		&component.PhysicsBody{Width: spec.Width, Height: spec.Height},
		component.Appearance{Color: spec.Color.NRGBA},
	)
	if err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: %w", err)
	}

	if err := ecs.Add(w, entity, component.MotionComponent.Kind(), &component.Motion{
		FromX:           x,
		FromY:           y,
		ToX:             x + x*spec.RangeFactor,
		ToY:             y,
		Duration:        spec.Duration,
		RemoveOnArrival: true,
	}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("projectile: add motion: %w", err)
	}

	return entity, nil
}
