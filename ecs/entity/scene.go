package entity

import (
	"errors"
	"fmt"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
)

var ErrNoScene = errors.New("entity: world has no scene")

// NewScene creates the entity holding the per-world state: the current
// dimension (Front), the score and the playfield size.
func NewScene(w *ecs.World, width, height float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.SceneTagComponent.Kind(), &component.SceneTag{}); err != nil {
		return 0, fmt.Errorf("scene: add tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.DimensionStateComponent.Kind(), &component.DimensionState{Current: component.DimensionFront}); err != nil {
		return 0, fmt.Errorf("scene: add dimension state: %w", err)
	}
	if err := ecs.Add(w, entity, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("scene: add score: %w", err)
	}
	if err := ecs.Add(w, entity, component.PlayfieldComponent.Kind(), &component.Playfield{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("scene: add playfield: %w", err)
	}

	return entity, nil
}

// Scene bundles the scene entity's components.
type Scene struct {
	Entity    ecs.Entity
	Dimension *component.DimensionState
	Score     *component.Score
	Playfield *component.Playfield
}

// SceneOf looks up the scene of w.
func SceneOf(w *ecs.World) (Scene, error) {
	e, ok := w.First(component.SceneTagComponent.Kind())
	if !ok {
		return Scene{}, ErrNoScene
	}
	dim, okDim := ecs.Get(w, e, component.DimensionStateComponent.Kind())
	score, okScore := ecs.Get(w, e, component.ScoreComponent.Kind())
	field, okField := ecs.Get(w, e, component.PlayfieldComponent.Kind())
	if !okDim || !okScore || !okField {
		return Scene{}, ErrNoScene
	}
	return Scene{Entity: e, Dimension: dim, Score: score, Playfield: field}, nil
}

// CurrentDimension returns the scene's dimension, Front when there is no
// scene yet.
func CurrentDimension(w *ecs.World) component.Dimension {
	scene, err := SceneOf(w)
	if err != nil {
		return component.DimensionFront
	}
	return scene.Dimension.Current
}

// addBody attaches the components every dimensional body shares.
func addBody(w *ecs.World, entity ecs.Entity, layer component.Layer, transform *component.Transform, body *component.PhysicsBody, clr component.Appearance) error {
	if err := ecs.Add(w, entity, component.LayerComponent.Kind(), &layer); err != nil {
		return fmt.Errorf("add layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), component.NewCollisionLayer(layer)); err != nil {
		return fmt.Errorf("add collision layer: %w", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), transform); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), body); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	if err := ecs.Add(w, entity, component.AppearanceComponent.Kind(), &clr); err != nil {
		return fmt.Errorf("add appearance: %w", err)
	}
	opacity := component.OpacityFor(layer.Dimension, CurrentDimension(w))
	if err := ecs.Add(w, entity, component.OpacityComponent.Kind(), &component.Opacity{Alpha: opacity}); err != nil {
		return fmt.Errorf("add opacity: %w", err)
	}
	return nil
}
