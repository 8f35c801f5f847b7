package system

import (
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
)

func TestShapeFilterPairs(t *testing.T) {
	var layers []component.Layer
	for _, k := range []component.EntityKind{component.KindPlayer, component.KindEnemy, component.KindProjectile} {
		for _, d := range []component.Dimension{component.DimensionFront, component.DimensionBack} {
			layers = append(layers, component.Layer{Kind: k, Dimension: d})
		}
	}

	wantTouch := func(a, b component.Layer) bool {
		if a.Dimension != b.Dimension {
			return false
		}
		pair := map[component.EntityKind]bool{a.Kind: true, b.Kind: true}
		return len(pair) == 2 && pair[component.KindEnemy] && (pair[component.KindPlayer] || pair[component.KindProjectile])
	}

	for _, a := range layers {
		for _, b := range layers {
			fa, fb := ShapeFilterFor(a), ShapeFilterFor(b)
			touch := fa.Categories&fb.Mask != 0 && fb.Categories&fa.Mask != 0
			if touch != wantTouch(a, b) {
				t.Errorf("%s/%s vs %s/%s: touch = %v", a.Kind, a.Dimension, b.Kind, b.Dimension, touch)
			}
		}
	}
}

func newPhysicsScheduler(physics *PhysicsSystem, cmds *CommandSystem) *ecs.Scheduler {
	return ecs.NewScheduler(
		cmds,
		NewMotionSystem(1.0/60),
		physics,
		NewCollisionSystem(nil),
	)
}

func TestProjectileDestroysEnemyOnSamePlane(t *testing.T) {
	tests := []struct {
		name      string
		enemyDim  component.Dimension
		playerDim component.Dimension
		wantScore int
	}{
		{"front_hits_front", component.DimensionFront, component.DimensionFront, 1},
		{"back_hits_back", component.DimensionBack, component.DimensionBack, 1},
		{"front_passes_back", component.DimensionBack, component.DimensionFront, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, specs := newTestWorld(t)
			mustPlayerAt(t, w, specs, 128, 50)
			controller := NewDimensionController()
			if tc.playerDim != component.DimensionFront {
				controller.Switch(w, tc.playerDim)
			}
			enemy := mustEnemy(t, w, specs, tc.enemyDim, 50, 3.0)

			physics := NewPhysicsSystem(1.0 / 60)
			systems := newPhysicsScheduler(physics, NewCommandSystem(controller, specs))
			w.Events().Push(ecs.Event{Type: ecs.EventCommand, Data: component.Fire()})

			for i := 0; i < 120; i++ {
				systems.Update(w)
				w.Events().Drain()
			}

			if got := score(t, w); got != tc.wantScore {
				t.Fatalf("score = %d, want %d", got, tc.wantScore)
			}
			if tc.wantScore == 1 {
				if w.IsAlive(enemy) {
					t.Fatalf("enemy survived the hit")
				}
				if n := len(w.Query(component.ProjectileTagComponent.Kind())); n != 0 {
					t.Fatalf("%d projectiles left", n)
				}
			}
		})
	}
}

func TestPhysicsSystemReleasesDeadBodies(t *testing.T) {
	w, specs := newTestWorld(t)
	enemy := mustEnemy(t, w, specs, component.DimensionFront, 50, 3.0)
	physics := NewPhysicsSystem(1.0 / 60)

	physics.Update(w)
	body, _ := ecs.Get(w, enemy, component.PhysicsBodyComponent.Kind())
	if body.Shape == nil {
		t.Fatalf("physics did not attach a shape")
	}
	shape := body.Shape
	if got, ok := physics.EntityForShape(shape); !ok || got != enemy {
		t.Fatalf("EntityForShape = %v, %v", got, ok)
	}

	ecs.DestroyEntity(w, enemy)
	physics.Update(w)

	if _, ok := physics.EntityForShape(shape); ok {
		t.Fatalf("shape of a destroyed entity is still tracked")
	}
}

func TestPlayerFollowsDimensionInPhysics(t *testing.T) {
	w, specs := newTestWorld(t)
	mustPlayerAt(t, w, specs, 600, 300)
	// An enemy parked on the player, on the back plane.
	enemy := mustEnemy(t, w, specs, component.DimensionBack, 300, 3.0)
	tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
	tr.X = 600

	physics := NewPhysicsSystem(1.0 / 60)
	contacts := func() int {
		physics.Update(w)
		return len(w.Events().Take(ecs.EventContact))
	}

	if n := contacts(); n != 0 {
		t.Fatalf("%d contacts across planes", n)
	}

	NewDimensionController().Switch(w, component.DimensionBack)
	if entity.CurrentDimension(w) != component.DimensionBack {
		t.Fatal("switch failed")
	}
	if n := contacts(); n != 1 {
		t.Fatalf("%d contacts after joining the enemy's plane, want 1", n)
	}
}
