package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/entity"
)

const (
	hudMargin      = 12
	hudLineSpacing = 18
)

var hudFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// HUD prints the collision counter and the current plane in the top-left
// corner.
type HUD struct {
	Color color.Color
}

func NewHUD(clr color.Color) *HUD {
	if clr == nil {
		clr = color.Black
	}
	return &HUD{Color: clr}
}

func (h *HUD) Draw(w *ecs.World, screen *ebiten.Image) {
	if h == nil || w == nil || screen == nil {
		return
	}
	scene, err := entity.SceneOf(w)
	if err != nil {
		return
	}

	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(hudMargin, hudMargin)
	op.ColorScale.ScaleWithColor(h.Color)
	op.LineSpacing = hudLineSpacing
	ebtext.Draw(screen, Status(scene), hudFace, op)
}

// Status is the HUD line for a scene.
func Status(scene entity.Scene) string {
	return fmt.Sprintf("Collided: %d\nDimension: %s", scene.Score.Collisions, scene.Dimension.Current)
}
