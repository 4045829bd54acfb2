package main

import (
	"os"

	"go.uber.org/zap"

	"ColorBook/internal/config"
	"ColorBook/internal/imgload"
	"ColorBook/internal/logs"
	"ColorBook/internal/state"
	"ColorBook/internal/ui"
)

const configPath = "colorbook.toml"

func main() {
	logger := logs.Get("main")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatal("bad configuration", zap.Error(err))
	}

	// An optional positional argument overrides the configured image path.
	if len(os.Args) > 1 {
		cfg.ImagePath = os.Args[1]
	}

	palette, err := cfg.Colors()
	if err != nil {
		logger.Fatal("bad palette", zap.Error(err))
	}

	board := state.New(cfg.CanvasWidth, cfg.CanvasHeight)
	base, loadErr := imgload.Load(cfg.ImagePath, board.Size())
	if loadErr != nil {
		// Not fatal: the window still opens, painting is disabled.
		logger.Warn("image load failed", zap.Error(loadErr))
	} else {
		board.SetImage(base, cfg.OutlineThreshold)
	}

	ui.RunApp(board, palette, cfg.BrushWidth, loadErr)
}
