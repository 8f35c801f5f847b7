package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/milk9111/antivirus/common"
	"github.com/milk9111/antivirus/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and the physics overlay")
	seed := flag.Uint64("seed", 0, "spawn RNG seed (0 picks a random one)")
	mute := flag.Bool("mute", false, "disable sound effects")
	watch := flag.Bool("watch", false, "reload prefabs from disk when they change")
	flag.Parse()

	opts := logger.Options{}
	if *debug {
		opts.Level = "debug"
	}
	logger.Init(opts)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("antivirus")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(GameOptions{Debug: *debug, Seed: *seed, Mute: *mute, Watch: *watch})
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logger.Log.WithFields(logrus.Fields{"seed": game.Seed()}).WithError(err).Fatal("run game")
	}
}
