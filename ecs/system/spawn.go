package system

import (
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/logger"
	"github.com/milk9111/antivirus/prefabs"
)

// spawnEpsilon absorbs float drift from summing fixed steps.
const spawnEpsilon = 1e-9

// SpawnSystem makes one spawn decision per Enemy.Spawn.Interval seconds,
// the first on the first update. Each decision rolls uniformly in
// [0, RollMax) and lets the policy pick the dimension, or nothing.
type SpawnSystem struct {
	Specs  *prefabs.Specs
	Policy SpawnPolicy
	Rand   entity.Rand
	Step   float64

	untilNext float64
	log       *logrus.Entry
}

func NewSpawnSystem(specs *prefabs.Specs, policy SpawnPolicy, rng entity.Rand, step float64) *SpawnSystem {
	if policy == nil {
		policy = DefaultSpawnPolicy()
	}
	if step <= 0 {
		step = common.FixedStep
	}
	return &SpawnSystem{Specs: specs, Policy: policy, Rand: rng, Step: step, log: logger.For("spawn_system")}
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if w == nil || s.Specs == nil || s.Rand == nil {
		return
	}

	s.untilNext -= s.Step
	if s.untilNext > spawnEpsilon {
		return
	}
	s.untilNext += s.Specs.Enemy.Spawn.Interval
	if s.untilNext <= 0 {
		s.untilNext = s.Specs.Enemy.Spawn.Interval
	}

	s.Decide(w)
}

// Decide rolls once and spawns at most one enemy.
func (s *SpawnSystem) Decide(w *ecs.World) {
	roll := s.Rand.Float64() * s.Specs.Enemy.Spawn.RollMax
	dim, ok, err := s.Policy.Decide(roll)
	if err != nil {
		s.log.WithError(err).Warn("spawn policy failed, using tiers")
		dim, ok, _ = DefaultSpawnPolicy().Decide(roll)
	}
	if !ok {
		return
	}

	e, err := entity.NewEnemy(w, &s.Specs.Enemy, dim, s.Rand)
	if err != nil {
		s.log.WithError(err).Error("spawn enemy failed")
		return
	}
	s.log.WithFields(logrus.Fields{"enemy": e, "dimension": dim, "roll": roll}).Debug("spawned enemy")
}
