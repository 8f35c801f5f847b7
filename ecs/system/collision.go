package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/logger"
)

// CollisionResolver turns contact pairs into gameplay. Pairs are put in
// canonical order by category mask, which within one dimension sorts
// player < enemy < projectile, so each handler matches exactly one ordered
// kind pair. Both dimensions are handled alike.
type CollisionResolver struct {
	log *logrus.Entry
}

func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{log: logger.For("collision_resolver")}
}

type contactBody struct {
	entity ecs.Entity
	layer  component.Layer
	masks  component.CollisionLayer
}

func (r *CollisionResolver) body(w *ecs.World, e ecs.Entity) (contactBody, bool) {
	layer, ok := ecs.Get(w, e, component.LayerComponent.Kind())
	if !ok {
		return contactBody{}, false
	}
	masks, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return contactBody{}, false
	}
	return contactBody{entity: e, layer: *layer, masks: *masks}, true
}

// OnContact resolves one unordered pair. Pairs naming a removed entity are
// ignored: the entity already reached its end.
func (r *CollisionResolver) OnContact(w *ecs.World, a, b ecs.Entity) {
	first, okA := r.body(w, a)
	second, okB := r.body(w, b)
	if !okA || !okB || a == b {
		return
	}
	if second.masks.Category < first.masks.Category {
		first, second = second, first
	}
	if first.layer.Dimension != second.layer.Dimension {
		return
	}

	switch {
	case first.layer.Kind == component.KindPlayer && second.layer.Kind == component.KindEnemy:
		r.enemyHitPlayer(second, first)
	case first.layer.Kind == component.KindEnemy && second.layer.Kind == component.KindProjectile:
		r.enemyHitProjectile(w, first, second)
	}
}

// enemyHitPlayer is where damage would go; the game has none.
func (r *CollisionResolver) enemyHitPlayer(enemy, player contactBody) {
	r.log.WithFields(logrus.Fields{
		"enemy":     enemy.entity,
		"player":    player.entity,
		"dimension": enemy.layer.Dimension,
	}).Debug("enemy reached player")
}

func (r *CollisionResolver) enemyHitProjectile(w *ecs.World, enemy, projectile contactBody) {
	ecs.DestroyEntity(w, enemy.entity)
	ecs.DestroyEntity(w, projectile.entity)

	scene, err := entity.SceneOf(w)
	if err != nil {
		r.log.WithError(err).Warn("collision without scene")
		return
	}
	scene.Score.Collisions++

	w.Events().Push(ecs.Event{Type: ecs.EventCollisionCount, Data: ecs.CollisionCountEvent{Count: scene.Score.Collisions}})
	r.log.WithFields(logrus.Fields{
		"count":     scene.Score.Collisions,
		"dimension": enemy.layer.Dimension,
	}).Info("collided")
}

// CollisionSystem feeds the contacts queued by the physics step to the
// resolver.
type CollisionSystem struct {
	Resolver *CollisionResolver
}

func NewCollisionSystem(resolver *CollisionResolver) *CollisionSystem {
	if resolver == nil {
		resolver = NewCollisionResolver()
	}
	return &CollisionSystem{Resolver: resolver}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventContact) {
		contact, ok := evt.Data.(ecs.ContactEvent)
		if !ok {
			continue
		}
		s.Resolver.OnContact(w, contact.A, contact.B)
	}
}
