package main

import (
	"flag"
	"os"

	"bench3d/internal/config"
	"bench3d/internal/game"
	"bench3d/pkg/logger"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/workbench.json", "scene file to load")
	configPath := flag.String("config", "assets/config/interaction.yaml", "interaction tuning file")
	watch := flag.Bool("watch", false, "hot-reload the tuning file on change")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.L().WithError(err).Warn("using default tuning")
		cfg = config.Default()
	}

	g, err := game.New(cfg, *scenePath)
	if err != nil {
		logger.L().WithError(err).Error("failed to set up game")
		os.Exit(1)
	}

	if *watch {
		w, err := config.Watch(*configPath, g.ApplyConfig)
		if err != nil {
			logger.L().WithError(err).Warn("config watch disabled")
		} else {
			defer w.Close()
		}
	}

	g.Run()
}
