package entity

import (
	"fmt"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/prefabs"
)

// NewPlayer places the player at its spec position inside the playfield, on
// the scene's current dimension.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	scene, err := SceneOf(w)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	x := scene.Playfield.Width * spec.StartX
	y := scene.Playfield.Height * spec.StartY
	return NewPlayerAt(w, spec, x, y)
}

func NewPlayerAt(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if _, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		return 0, fmt.Errorf("player: already exists")
	}

	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: add tag: %w", err)
	}

	layer := component.Layer{Kind: component.KindPlayer, Dimension: CurrentDimension(w)}
	err := addBody(w, entity, layer,
		&component.Transform{X: x, Y: y},
		&component.PhysicsBody{Radius: spec.Radius},
		component.Appearance{Color: spec.Color.NRGBA},
	)
	if err != nil {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: %w", err)
	}

	return entity, nil
}
