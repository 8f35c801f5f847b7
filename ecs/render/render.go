package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
)

// RenderSystem draws every body as a flat shape in its appearance colour,
// with alpha scaled by the entity's opacity. Inactive-plane entities are
// drawn first so the active plane sits on top.
type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{Background: background}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	if r.Background != nil {
		screen.Fill(r.Background)
	}

	entities := w.Query(
		component.TransformComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
		component.AppearanceComponent.Kind(),
	)
	sort.SliceStable(entities, func(i, j int) bool {
		ai, aj := drawAlpha(w, entities[i]), drawAlpha(w, entities[j])
		if ai != aj {
			return ai < aj
		}
		ki, kj := drawKind(w, entities[i]), drawKind(w, entities[j])
		if ki != kj {
			return ki > kj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		look, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())

		clr := withAlpha(look.Color, drawAlpha(w, e))
		if body.Radius > 0 {
			vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(body.Radius), clr, true)
			continue
		}
		vector.FillRect(screen,
			float32(t.X-body.HalfWidth()), float32(t.Y-body.HalfHeight()),
			float32(body.Width), float32(body.Height), clr, true)
	}
}

func drawAlpha(w *ecs.World, e ecs.Entity) float64 {
	if o, ok := ecs.Get(w, e, component.OpacityComponent.Kind()); ok {
		return o.Alpha
	}
	return component.OpacityActive
}

func drawKind(w *ecs.World, e ecs.Entity) component.EntityKind {
	if l, ok := ecs.Get(w, e, component.LayerComponent.Kind()); ok {
		return l.Kind
	}
	return component.KindPlayer
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A) * alpha)
	return c
}
