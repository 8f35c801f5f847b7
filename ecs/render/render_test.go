package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
)

func TestWithAlpha(t *testing.T) {
	base := color.NRGBA{R: 10, G: 20, B: 30, A: 200}
	tests := []struct {
		name  string
		alpha float64
		want  uint8
	}{
		{"active", component.OpacityActive, 200},
		{"inactive", component.OpacityInactive, 100},
		{"clamped_low", -1, 0},
		{"clamped_high", 2, 200},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := withAlpha(base, tc.alpha)
			if got.A != tc.want || got.R != base.R || got.G != base.G || got.B != base.B {
				t.Fatalf("withAlpha = %v, want alpha %d", got, tc.want)
			}
		})
	}
}

func TestStatus(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := entity.NewScene(w, 1280, 720); err != nil {
		t.Fatal(err)
	}
	scene, err := entity.SceneOf(w)
	if err != nil {
		t.Fatal(err)
	}
	scene.Score.Collisions = 3
	scene.Dimension.Current = component.DimensionBack

	if got, want := Status(scene), "Collided: 3\nDimension: back"; got != want {
		t.Fatalf("Status = %q, want %q", got, want)
	}
}
