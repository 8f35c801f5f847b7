package system

import (
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/logger"
)

const collisionTypeActor cp.CollisionType = 1

// PhysicsSystem mirrors every entity with a PhysicsBody into a Chipmunk
// space as a sensor, steps the space and queues an EventContact for every
// pair that started touching. Bodies are placed from Transform each frame;
// the space only detects overlaps.
//
// Broad-phase filtering is derived from Layer, one filter bit per kind and
// dimension, so only same-dimension player/enemy and enemy/projectile pairs
// can ever touch.
type PhysicsSystem struct {
	Step float64

	space         *cp.Space
	handlersReady bool

	entities      map[ecs.Entity]*bodyInfo
	shapeToEntity map[*cp.Shape]ecs.Entity
	pending       []ecs.ContactEvent

	log *logrus.Entry
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	filter cp.ShapeFilter
}

func NewPhysicsSystem(step float64) *PhysicsSystem {
	if step <= 0 {
		step = common.FixedStep
	}
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		Step:          step,
		space:         space,
		entities:      make(map[ecs.Entity]*bodyInfo),
		shapeToEntity: make(map[*cp.Shape]ecs.Entity),
		log:           logger.For("physics_system"),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// EntityForShape maps a space shape back to its entity.
func (ps *PhysicsSystem) EntityForShape(shape *cp.Shape) (ecs.Entity, bool) {
	e, ok := ps.shapeToEntity[shape]
	return e, ok
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.ensureHandlers()
	ps.cleanupEntities(w)
	ps.syncEntities(w)

	ps.space.Step(ps.Step)

	for _, contact := range ps.pending {
		w.Events().Push(ecs.Event{Type: ecs.EventContact, Data: contact})
	}
	ps.pending = ps.pending[:0]
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypeActor, collisionTypeActor)
	handler.UserData = ps
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapeToEntity[shapeA]
		b, okB := sys.shapeToEntity[shapeB]
		if okA && okB {
			sys.pending = append(sys.pending, ecs.ContactEvent{A: a, B: b})
		}
		return true
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), component.LayerComponent.Kind()) {
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		transform, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		layer, _ := ecs.Get(w, e, component.LayerComponent.Kind())

		info := ps.entities[e]
		if info == nil {
			info = ps.createBodyInfo(transform, bodyComp, *layer)
			ps.entities[e] = info
			ps.shapeToEntity[info.shape] = e
			bodyComp.Body = info.body
			bodyComp.Shape = info.shape
			ps.log.WithFields(logrus.Fields{"entity": e, "kind": layer.Kind, "dimension": layer.Dimension}).Debug("body created")
		}

		if filter := ShapeFilterFor(*layer); filter != info.filter {
			info.shape.SetFilter(filter)
			info.filter = filter
		}
		info.body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
		info.body.SetAngle(transform.Rotation)
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform *component.Transform, bodyComp *component.PhysicsBody, layer component.Layer) *bodyInfo {
	const mass = 1.0

	var body *cp.Body
	var shape *cp.Shape
	if bodyComp.Radius > 0 {
		body = cp.NewBody(mass, cp.MomentForCircle(mass, 0, bodyComp.Radius, cp.Vector{}))
		shape = cp.NewCircle(body, bodyComp.Radius, cp.Vector{})
	} else {
		width, height := bodyComp.Width, bodyComp.Height
		if width <= 0 || height <= 0 {
			width, height = 1, 1
		}
		body = cp.NewBody(mass, cp.MomentForBox(mass, width, height))
		shape = cp.NewBox(body, width, height, 0)
	}
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})

	filter := ShapeFilterFor(layer)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(filter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	return &bodyInfo{body: body, shape: shape, filter: filter}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	var dead []ecs.Entity
	for e := range ps.entities {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			dead = append(dead, e)
		}
	}
	// Map order is random; removal order shapes the spatial index.
	slices.Sort(dead)

	for _, e := range dead {
		info := ps.entities[e]
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.shapeToEntity, info.shape)
		delete(ps.entities, e)
	}
}

// Filter bits per kind and dimension. Unlike the category table these are
// one-hot, so no two classes share a bit.
func layerBit(l component.Layer) uint {
	return 1 << (uint(l.Kind)*2 + uint(l.Dimension))
}

// ShapeFilterFor derives the broad-phase filter of a layer. Chipmunk only
// pairs two shapes when each one's mask accepts the other's category, so
// the partner lists below are symmetric.
func ShapeFilterFor(l component.Layer) cp.ShapeFilter {
	var mask uint
	switch l.Kind {
	case component.KindPlayer:
		mask = layerBit(component.Layer{Kind: component.KindEnemy, Dimension: l.Dimension})
	case component.KindEnemy:
		mask = layerBit(component.Layer{Kind: component.KindPlayer, Dimension: l.Dimension}) |
			layerBit(component.Layer{Kind: component.KindProjectile, Dimension: l.Dimension})
	case component.KindProjectile:
		mask = layerBit(component.Layer{Kind: component.KindEnemy, Dimension: l.Dimension})
	}
	return cp.NewShapeFilter(cp.NO_GROUP, layerBit(l), mask)
}
