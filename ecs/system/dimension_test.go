package system

import (
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
)

func TestDimensionSwitch(t *testing.T) {
	tests := []struct {
		name string
		to   component.Dimension
	}{
		{"to_back", component.DimensionBack},
		{"to_front", component.DimensionFront},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, specs := newTestWorld(t)
			scene, _ := entity.SceneOf(w)
			scene.Dimension.Current = tc.to.Other()

			player := mustPlayerAt(t, w, specs, 128, 360)
			// The player was built on the other plane.
			var mixed []ecs.Entity
			for _, d := range []component.Dimension{component.DimensionFront, component.DimensionBack} {
				mixed = append(mixed,
					mustEnemy(t, w, specs, d, 100, 3),
					mustProjectile(t, w, specs, d, 200, 200),
				)
			}

			NewDimensionController().Switch(w, tc.to)

			if entity.CurrentDimension(w) != tc.to {
				t.Fatalf("current = %v, want %v", entity.CurrentDimension(w), tc.to)
			}

			layer, _ := ecs.Get(w, player, component.LayerComponent.Kind())
			masks, _ := ecs.Get(w, player, component.CollisionLayerComponent.Kind())
			if layer.Dimension != tc.to || masks.Category != component.CategoryFor(component.Layer{Kind: component.KindPlayer, Dimension: tc.to}) {
				t.Fatalf("player layer=%+v masks=%+v", *layer, *masks)
			}

			for _, e := range mixed {
				l, _ := ecs.Get(w, e, component.LayerComponent.Kind())
				o, _ := ecs.Get(w, e, component.OpacityComponent.Kind())
				want := 0.5
				if l.Dimension == tc.to {
					want = 1.0
				}
				if o.Alpha != want {
					t.Fatalf("%s on %s: opacity %v, want %v", l.Kind, l.Dimension, o.Alpha, want)
				}
			}

			events := w.Events().Take(ecs.EventDimensionChanged)
			if len(events) != 1 {
				t.Fatalf("%d dimension events, want 1", len(events))
			}
			change := events[0].Data.(ecs.DimensionChangedEvent)
			if change.From != tc.to.Other() || change.To != tc.to {
				t.Fatalf("event = %+v", change)
			}
		})
	}
}

func TestDimensionSwitchIsIdempotent(t *testing.T) {
	w, specs := newTestWorld(t)
	mustPlayerAt(t, w, specs, 128, 360)
	enemy := mustEnemy(t, w, specs, component.DimensionBack, 100, 3)

	c := NewDimensionController()
	c.Switch(w, component.DimensionBack)
	c.Switch(w, component.DimensionBack)

	o, _ := ecs.Get(w, enemy, component.OpacityComponent.Kind())
	if entity.CurrentDimension(w) != component.DimensionBack || o.Alpha != 1.0 {
		t.Fatalf("state after repeat: dim=%v opacity=%v", entity.CurrentDimension(w), o.Alpha)
	}
}

func TestDimensionSwitchWithoutScene(t *testing.T) {
	w := ecs.NewWorld()
	NewDimensionController().Switch(w, component.DimensionBack)
	if w.Events().Len() != 0 {
		t.Fatalf("switch without a scene should not emit events")
	}
}
