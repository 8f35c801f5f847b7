package system

import (
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/prefabs"
)

// seqRand replays vals in order, wrapping around.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestWorld(t *testing.T) (*ecs.World, *prefabs.Specs) {
	t.Helper()
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := entity.NewScene(w, specs.Scene.Width, specs.Scene.Height); err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return w, specs
}

func mustSpecs(t *testing.T) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	return specs
}

func mustPlayerAt(t *testing.T, w *ecs.World, specs *prefabs.Specs, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayerAt(w, &specs.Player, x, y)
	if err != nil {
		t.Fatalf("NewPlayerAt: %v", err)
	}
	return e
}

func mustEnemy(t *testing.T, w *ecs.World, specs *prefabs.Specs, d component.Dimension, y, duration float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemyAt(w, &specs.Enemy, d, y, duration)
	if err != nil {
		t.Fatalf("NewEnemyAt: %v", err)
	}
	return e
}

// mustProjectile fires on dimension d regardless of the scene's current one.
func mustProjectile(t *testing.T, w *ecs.World, specs *prefabs.Specs, d component.Dimension, x, y float64) ecs.Entity {
	t.Helper()
	scene, err := entity.SceneOf(w)
	if err != nil {
		t.Fatal(err)
	}
	prev := scene.Dimension.Current
	scene.Dimension.Current = d
	defer func() { scene.Dimension.Current = prev }()

	e, err := entity.NewProjectile(w, &specs.Projectile, x, y)
	if err != nil {
		t.Fatalf("NewProjectile: %v", err)
	}
	return e
}

func score(t *testing.T, w *ecs.World) int {
	t.Helper()
	scene, err := entity.SceneOf(w)
	if err != nil {
		t.Fatal(err)
	}
	return scene.Score.Collisions
}
