package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/ecs"
	"github.com/milk9111/antivirus/ecs/entity"
	"github.com/milk9111/antivirus/ecs/render"
	"github.com/milk9111/antivirus/ecs/system"
	"github.com/milk9111/antivirus/logger"
	"github.com/milk9111/antivirus/prefabs"
)

type GameOptions struct {
	Debug bool
	Seed  uint64
	Mute  bool
	Watch bool
}

type Game struct {
	opts   GameOptions
	paused bool

	specs   *prefabs.Specs
	world   *ecs.World
	systems *ecs.Scheduler
	physics *system.PhysicsSystem
	spawn   *system.SpawnSystem
	rng     *rand.Rand

	renderer *render.RenderSystem
	hud      *render.HUD
	pauseUI  *ebitenui.UI
	sfx      *SFX
	watcher  *prefabs.Watcher

	log *logrus.Entry
}

func NewGame(opts GameOptions) (*Game, error) {
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		return nil, fmt.Errorf("load prefabs: %w", err)
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}

	g := &Game{
		opts:  opts,
		specs: specs,
		rng:   rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		hud:   render.NewHUD(nil),
		log:   logger.For("game"),
	}
	g.renderer = render.NewRenderSystem(specs.Scene.Background.NRGBA)
	g.pauseUI = NewPauseUI(g)

	if !opts.Mute {
		g.sfx = NewSFX()
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.WatchDirs()...)
		if err != nil {
			g.log.WithError(err).Warn("prefab watcher disabled")
		} else {
			g.watcher = watcher
		}
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	g.log.WithFields(logrus.Fields{"seed": opts.Seed, "watch": g.watcher != nil}).Info("game started")
	return g, nil
}

// reset builds a fresh world: scene, player and the system pipeline.
func (g *Game) reset() error {
	w := ecs.NewWorld()
	if _, err := entity.NewScene(w, g.specs.Scene.Width, g.specs.Scene.Height); err != nil {
		return fmt.Errorf("build scene: %w", err)
	}
	if _, err := entity.NewPlayer(w, &g.specs.Player); err != nil {
		return fmt.Errorf("build player: %w", err)
	}

	controller := system.NewDimensionController()
	g.physics = system.NewPhysicsSystem(common.FixedStep)
	g.spawn = system.NewSpawnSystem(g.specs, g.spawnPolicy(), g.rng, common.FixedStep)

	g.world = w
	g.systems = ecs.NewScheduler(
		system.NewInputSystem(NewPointerInput(), g.specs),
		system.NewCommandSystem(controller, g.specs),
		g.spawn,
		system.NewMotionSystem(common.FixedStep),
		g.physics,
		system.NewCollisionSystem(system.NewCollisionResolver()),
	)
	g.paused = false
	return nil
}

func (g *Game) spawnPolicy() system.SpawnPolicy {
	if g.specs.Enemy.Spawn.Script == "" {
		return system.DefaultSpawnPolicy()
	}
	policy, err := system.NewScriptSpawnPolicy(g.specs.Enemy.Spawn.Script)
	if err != nil {
		g.log.WithError(err).Warn("spawn script unavailable, using tiers")
		return system.DefaultSpawnPolicy()
	}
	return policy
}

// Restart throws the current run away, score included.
func (g *Game) Restart() {
	if err := g.reset(); err != nil {
		g.log.WithError(err).Error("restart failed")
		return
	}
	g.log.Info("restarted")
}

func (g *Game) Resume() {
	g.paused = false
}

func (g *Game) Seed() uint64 {
	return g.opts.Seed
}

func (g *Game) Update() error {
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.systems.Update(g.world)
	g.handleEvents()
	return nil
}

func (g *Game) handleEvents() {
	for _, evt := range g.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventCollisionCount:
			g.sfx.PlayHit()
		case ecs.EventDimensionChanged:
			if change, ok := evt.Data.(ecs.DimensionChangedEvent); ok {
				g.log.WithFields(logrus.Fields{"from": change.From, "to": change.To}).Debug("dimension event")
			}
		}
	}
}

// pollReload applies prefab edits picked up by the watcher. Entities already
// alive keep the values they were built with.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.WithError(err).Warn("prefab watcher")
			}
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	specs, err := prefabs.LoadSpecs()
	if err != nil {
		g.log.WithError(err).WithField("path", path).Warn("prefab reload rejected")
		return
	}
	*g.specs = *specs
	g.renderer.Background = g.specs.Scene.Background.NRGBA
	g.spawn.Policy = g.spawnPolicy()
	g.log.WithField("path", path).Info("prefabs reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.hud.Draw(g.world, screen)

	if g.opts.Debug {
		render.DrawPhysicsDebug(g.physics, g.world, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.WithError(err).Warn("close prefab watcher")
		}
		g.watcher = nil
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.specs.Scene.Width, g.specs.Scene.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
