package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/logger"
	"github.com/milk9111/antivirus/prefabs"
)

// CommandSystem executes queued commands: switches go to the dimension
// controller, fire spawns a projectile at the player's current position.
type CommandSystem struct {
	Controller *DimensionController
	Specs      *prefabs.Specs

	log *logrus.Entry
}

func NewCommandSystem(controller *DimensionController, specs *prefabs.Specs) *CommandSystem {
	if controller == nil {
		controller = NewDimensionController()
	}
	return &CommandSystem{Controller: controller, Specs: specs, log: logger.For("command_system")}
}

func (s *CommandSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Take(ecs.EventCommand) {
		cmd, ok := evt.Data.(component.Command)
		if !ok {
			continue
		}
		s.Execute(w, cmd)
	}
}

func (s *CommandSystem) Execute(w *ecs.World, cmd component.Command) {
	switch cmd.Kind {
	case component.CommandSwitchDimension:
		if cmd.Dimension == entity.CurrentDimension(w) {
			return
		}
		s.Controller.Switch(w, cmd.Dimension)
	case component.CommandFire:
		s.fire(w)
	}
}

func (s *CommandSystem) fire(w *ecs.World) {
	if s.Specs == nil {
		s.log.Warn("fire without projectile spec")
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	projectile, err := entity.NewProjectile(w, &s.Specs.Projectile, transform.X, transform.Y)
	if err != nil {
		s.log.WithError(err).Error("fire failed")
		return
	}
	s.log.WithFields(logrus.Fields{"projectile": projectile, "x": transform.X, "y": transform.Y}).Debug("fired")
}
