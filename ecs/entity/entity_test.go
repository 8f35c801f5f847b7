package entity

import (
	"errors"
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/prefabs"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func newWorld(t *testing.T) (*ecs.World, *prefabs.Specs) {
	t.Helper()
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		t.Fatalf("LoadSpecs: %v", err)
	}
	w := ecs.NewWorld()
	if _, err := NewScene(w, specs.Scene.Width, specs.Scene.Height); err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return w, specs
}

func setDimension(t *testing.T, w *ecs.World, d component.Dimension) {
	t.Helper()
	scene, err := SceneOf(w)
	if err != nil {
		t.Fatal(err)
	}
	scene.Dimension.Current = d
}

func TestSceneDefaults(t *testing.T) {
	w, _ := newWorld(t)
	scene, err := SceneOf(w)
	if err != nil {
		t.Fatalf("SceneOf: %v", err)
	}
	if scene.Dimension.Current != component.DimensionFront {
		t.Fatalf("initial dimension = %v, want front", scene.Dimension.Current)
	}
	if scene.Score.Collisions != 0 {
		t.Fatalf("initial score = %d", scene.Score.Collisions)
	}
	if scene.Playfield.Width != 1280 || scene.Playfield.Height != 720 {
		t.Fatalf("playfield = %+v", *scene.Playfield)
	}
}

func TestSceneMissing(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := SceneOf(w); !errors.Is(err, ErrNoScene) {
		t.Fatalf("SceneOf err = %v, want ErrNoScene", err)
	}
	if CurrentDimension(w) != component.DimensionFront {
		t.Fatalf("CurrentDimension without scene should be front")
	}
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewPlayer(w, &specs.Player); !errors.Is(err, ErrNoScene) {
		t.Fatalf("NewPlayer err = %v, want ErrNoScene", err)
	}
}

func TestNewPlayer(t *testing.T) {
	w, specs := newWorld(t)

	player, err := NewPlayer(w, &specs.Player)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	if tr.X != 128 || tr.Y != 360 {
		t.Fatalf("player at (%v, %v), want (128, 360)", tr.X, tr.Y)
	}
	layer, _ := ecs.Get(w, player, component.LayerComponent.Kind())
	if layer.Kind != component.KindPlayer || layer.Dimension != component.DimensionFront {
		t.Fatalf("layer = %+v", *layer)
	}
	masks, _ := ecs.Get(w, player, component.CollisionLayerComponent.Kind())
	if masks.Category != component.CategoryPlayerFront || masks.ContactMask != component.CategoryNone {
		t.Fatalf("masks = %+v", *masks)
	}
	if ecs.Has(w, player, component.DimensionalTagComponent.Kind()) {
		t.Fatalf("player should not follow dimension opacity")
	}

	if _, err := NewPlayer(w, &specs.Player); err == nil {
		t.Fatalf("second player should be rejected")
	}
	if n := len(w.Query(component.PlayerTagComponent.Kind())); n != 1 {
		t.Fatalf("%d players, want 1", n)
	}
}

func TestNewEnemyAt(t *testing.T) {
	tests := []struct {
		name        string
		current     component.Dimension
		dim         component.Dimension
		wantOpacity float64
		wantCat     uint32
		wantMask    uint32
	}{
		{"front_on_front", component.DimensionFront, component.DimensionFront, 1.0, component.CategoryEnemyFront, component.CategoryPlayerFront},
		{"back_on_front", component.DimensionFront, component.DimensionBack, 0.5, component.CategoryEnemyBack, component.CategoryPlayerBack},
		{"front_on_back", component.DimensionBack, component.DimensionFront, 0.5, component.CategoryEnemyFront, component.CategoryPlayerFront},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, specs := newWorld(t)
			setDimension(t, w, tc.current)

			enemy, err := NewEnemyAt(w, &specs.Enemy, tc.dim, 50, 3.0)
			if err != nil {
				t.Fatalf("NewEnemyAt: %v", err)
			}

			tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
			if tr.X != 1280+20 || tr.Y != 50 {
				t.Fatalf("enemy at (%v, %v), want (1300, 50)", tr.X, tr.Y)
			}
			motion, _ := ecs.Get(w, enemy, component.MotionComponent.Kind())
			if motion.ToX != -20 || motion.ToY != 50 || motion.Duration != 3.0 || !motion.RemoveOnArrival {
				t.Fatalf("motion = %+v", *motion)
			}
			opacity, _ := ecs.Get(w, enemy, component.OpacityComponent.Kind())
			if opacity.Alpha != tc.wantOpacity {
				t.Fatalf("opacity = %v, want %v", opacity.Alpha, tc.wantOpacity)
			}
			masks, _ := ecs.Get(w, enemy, component.CollisionLayerComponent.Kind())
			if masks.Category != tc.wantCat || masks.ContactMask != tc.wantMask {
				t.Fatalf("masks = %+v", *masks)
			}
		})
	}
}

func TestNewEnemyRandomRanges(t *testing.T) {
	tests := []struct {
		name         string
		roll         float64
		wantY        float64
		wantDuration float64
	}{
		{"low", 0, 20, 2.0},
		{"mid", 0.5, 360, 3.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, specs := newWorld(t)
			enemy, err := NewEnemy(w, &specs.Enemy, component.DimensionFront, fixedRand(tc.roll))
			if err != nil {
				t.Fatalf("NewEnemy: %v", err)
			}
			tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
			motion, _ := ecs.Get(w, enemy, component.MotionComponent.Kind())
			if tr.Y != tc.wantY || motion.Duration != tc.wantDuration {
				t.Fatalf("y=%v duration=%v, want y=%v duration=%v", tr.Y, motion.Duration, tc.wantY, tc.wantDuration)
			}
		})
	}

	t.Run("upper_bound_inside_field", func(t *testing.T) {
		w, specs := newWorld(t)
		enemy, err := NewEnemy(w, &specs.Enemy, component.DimensionFront, fixedRand(0.999999))
		if err != nil {
			t.Fatal(err)
		}
		tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
		motion, _ := ecs.Get(w, enemy, component.MotionComponent.Kind())
		if tr.Y > 720-20 || motion.Duration >= 4.0 {
			t.Fatalf("y=%v duration=%v out of range", tr.Y, motion.Duration)
		}
	})
}

func TestNewProjectile(t *testing.T) {
	for _, current := range []component.Dimension{component.DimensionFront, component.DimensionBack} {
		t.Run(current.String(), func(t *testing.T) {
			w, specs := newWorld(t)
			setDimension(t, w, current)

			p, err := NewProjectile(w, &specs.Projectile, 128, 360)
			if err != nil {
				t.Fatalf("NewProjectile: %v", err)
			}

			layer, _ := ecs.Get(w, p, component.LayerComponent.Kind())
			if layer.Kind != component.KindProjectile || layer.Dimension != current {
				t.Fatalf("layer = %+v", *layer)
			}
			motion, _ := ecs.Get(w, p, component.MotionComponent.Kind())
			if motion.ToX != 128+128*10 || motion.ToY != 360 || motion.Duration != 1.5 {
				t.Fatalf("motion = %+v", *motion)
			}
			body, _ := ecs.Get(w, p, component.PhysicsBodyComponent.Kind())
			if body.Radius != 0 || body.Width != 24 || body.Height != 8 {
				t.Fatalf("body = %+v", *body)
			}
			opacity, _ := ecs.Get(w, p, component.OpacityComponent.Kind())
			if opacity.Alpha != component.OpacityActive {
				t.Fatalf("fresh projectile opacity = %v", opacity.Alpha)
			}
		})
	}
}
