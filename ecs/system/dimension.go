package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/logger"
)

// DimensionController owns dimension switches. A switch rewrites the scene
// state, moves the player's layer and masks to the new plane and re-derives
// the opacity of every dimensional entity. The physics system re-reads
// layers before its next step, so the player's contacts follow at once.
type DimensionController struct {
	log *logrus.Entry
}

func NewDimensionController() *DimensionController {
	return &DimensionController{log: logger.For("dimension_controller")}
}

// Switch moves the scene to dimension to. Callers check to != current; a
// repeated call re-applies the same state.
func (c *DimensionController) Switch(w *ecs.World, to component.Dimension) {
	scene, err := entity.SceneOf(w)
	if err != nil {
		c.log.WithError(err).Warn("switch without scene")
		return
	}
	from := scene.Dimension.Current
	scene.Dimension.Current = to

	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if layer, ok := ecs.Get(w, player, component.LayerComponent.Kind()); ok {
			layer.Dimension = to
			if masks, ok := ecs.Get(w, player, component.CollisionLayerComponent.Kind()); ok {
				*masks = *component.NewCollisionLayer(*layer)
			}
		}
	}

	for _, e := range w.Query(component.DimensionalTagComponent.Kind(), component.LayerComponent.Kind(), component.OpacityComponent.Kind()) {
		layer, _ := ecs.Get(w, e, component.LayerComponent.Kind())
		opacity, _ := ecs.Get(w, e, component.OpacityComponent.Kind())
		opacity.Alpha = component.OpacityFor(layer.Dimension, to)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventDimensionChanged, Data: ecs.DimensionChangedEvent{From: from, To: to}})
	c.log.WithFields(logrus.Fields{"from": from, "to": to}).Info("switched dimension")
}
