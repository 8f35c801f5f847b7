package entity

import (
	"fmt"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/prefabs"
)

// Rand is the randomness the factory needs; *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewEnemy spawns an enemy on dimension dim just past the right edge, at a
// random height kept fully inside the playfield, travelling left over a
// random duration in [MinDuration, MaxDuration).
func NewEnemy(w *ecs.World, spec *prefabs.EnemySpec, dim component.Dimension, rng Rand) (ecs.Entity, error) {
	scene, err := SceneOf(w)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	y := randomRange(rng, spec.Radius, scene.Playfield.Height-spec.Radius)
	duration := randomRange(rng, spec.MinDuration, spec.MaxDuration)
	return NewEnemyAt(w, spec, dim, y, duration)
}

func NewEnemyAt(w *ecs.World, spec *prefabs.EnemySpec, dim component.Dimension, y, duration float64) (ecs.Entity, error) {
	scene, err := SceneOf(w)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.DimensionalTagComponent.Kind(), &component.DimensionalTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: add dimensional tag: %w", err)
	}

	startX := scene.Playfield.Width + spec.Radius
	endX := -spec.Radius

	err = addBody(w, entity, component.Layer{Kind: component.KindEnemy, Dimension: dim},
		&component.Transform{X: startX, Y: y},
		&component.PhysicsBody{Radius: spec.Radius},
		component.Appearance{Color: spec.Color.NRGBA},
	)
	if err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.MotionComponent.Kind(), &component.Motion{
		FromX:           startX,
		FromY:           y,
		ToX:             endX,
		ToY:             y,
		Duration:        duration,
		RemoveOnArrival: true,
	}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("enemy: add motion: %w", err)
	}

	return entity, nil
}

// randomRange draws uniformly from [lo, hi).
func randomRange(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
