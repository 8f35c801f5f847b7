// Command sim runs the game headless for a fixed time with an autopilot that
// fires on a cadence and flips dimension periodically, then reports the
// score. It is used to tune prefabs without opening a window.
package main

import (
	"flag"
	"math/rand/v2"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/ecs/system"
	"github.com/milk9111/antivirus/logger"
	"github.com/milk9111/antivirus/prefabs"
)

func main() {
	seconds := flag.Float64("seconds", 60, "simulated seconds")
	seed := flag.Uint64("seed", 1, "spawn RNG seed")
	fireEvery := flag.Float64("fire-every", 0.5, "seconds between shots (0 disables)")
	switchEvery := flag.Float64("switch-every", 5, "seconds between dimension flips (0 disables)")
	format := flag.String("log-format", "", "text or json")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	opts := logger.Options{Format: *format}
	if *verbose {
		opts.Level = "debug"
	}
	logger.Init(opts)
	log := logger.For("sim")

	specs, err := prefabs.LoadSpecs()
	if err != nil {
		log.WithError(err).Fatal("load prefabs")
	}

	stats, err := Run(specs, Config{
		Seconds:     *seconds,
		Seed:        *seed,
		FireEvery:   *fireEvery,
		SwitchEvery: *switchEvery,
	})
	if err != nil {
		log.WithError(err).Fatal("simulate")
	}

	log.WithFields(logrus.Fields{
		"seconds":   *seconds,
		"seed":      *seed,
		"collided":  stats.Collided,
		"shots":     stats.Shots,
		"switches":  stats.Switches,
		"remaining": stats.Remaining,
	}).Info("simulation finished")
}

type Config struct {
	Seconds     float64
	Seed        uint64
	FireEvery   float64
	SwitchEvery float64
}

type Stats struct {
	Collided  int
	Shots     int
	Switches  int
	Remaining int
}

// autopilot queues the commands a player would produce.
type autopilot struct {
	fireEvery   int
	switchEvery int
	frame       int
	stats       *Stats
}

func (a *autopilot) Update(w *ecs.World) {
	a.frame++
	if a.fireEvery > 0 && a.frame%a.fireEvery == 0 {
		w.Events().Push(ecs.Event{Type: ecs.EventCommand, Data: component.Fire()})
		a.stats.Shots++
	}
	if a.switchEvery > 0 && a.frame%a.switchEvery == 0 {
		next := entity.CurrentDimension(w).Other()
		w.Events().Push(ecs.Event{Type: ecs.EventCommand, Data: component.SwitchTo(next)})
		a.stats.Switches++
	}
}

func framesFor(seconds float64) int {
	return int(seconds * common.TPS)
}

// Run simulates one session with the same system order as the game.
func Run(specs *prefabs.Specs, cfg Config) (Stats, error) {
	var stats Stats

	w := ecs.NewWorld()
	if _, err := entity.NewScene(w, specs.Scene.Width, specs.Scene.Height); err != nil {
		return stats, err
	}
	if _, err := entity.NewPlayer(w, &specs.Player); err != nil {
		return stats, err
	}

	var policy system.SpawnPolicy = system.DefaultSpawnPolicy()
	if specs.Enemy.Spawn.Script != "" {
		if scripted, err := system.NewScriptSpawnPolicy(specs.Enemy.Spawn.Script); err == nil {
			policy = scripted
		} else {
			logger.For("sim").WithError(err).Warn("spawn script unavailable, using tiers")
		}
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	systems := ecs.NewScheduler(
		&autopilot{fireEvery: framesFor(cfg.FireEvery), switchEvery: framesFor(cfg.SwitchEvery), stats: &stats},
		system.NewCommandSystem(system.NewDimensionController(), specs),
		system.NewSpawnSystem(specs, policy, rng, common.FixedStep),
		system.NewMotionSystem(common.FixedStep),
		system.NewPhysicsSystem(common.FixedStep),
		system.NewCollisionSystem(system.NewCollisionResolver()),
	)

	for i := 0; i < framesFor(cfg.Seconds); i++ {
		systems.Update(w)
		w.Events().Drain()
	}

	scene, err := entity.SceneOf(w)
	if err != nil {
		return stats, err
	}
	stats.Collided = scene.Score.Collisions
	stats.Remaining = len(w.Query(component.EnemyTagComponent.Kind()))
	return stats, nil
}
