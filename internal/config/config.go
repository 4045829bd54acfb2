package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/zap"

	"ColorBook/internal/logs"
	"ColorBook/internal/mask"
)

var logger = logs.Get("config")

// Config holds everything the app reads at startup. Any field left out of
// the file keeps its default.
type Config struct {
	ImagePath        string   `toml:"image_path"`
	CanvasWidth      int      `toml:"canvas_width"`
	CanvasHeight     int      `toml:"canvas_height"`
	OutlineThreshold uint8    `toml:"outline_threshold"`
	BrushWidth       int      `toml:"brush_width"`
	Palette          []string `toml:"palette"`
}

// Default returns the built-in configuration: a 600x600 canvas, the
// standard darkness threshold and the five-color palette.
func Default() Config {
	return Config{
		ImagePath:        "artwork.png",
		CanvasWidth:      600,
		CanvasHeight:     600,
		OutlineThreshold: mask.DefaultThreshold,
		BrushWidth:       4,
		Palette: []string{
			"#FF0000", // red
			"#0000FF", // blue
			"#00FF00", // green
			"#FFFF00", // yellow
			"#800080", // purple
		},
	}
}

// Load reads the TOML file at path on top of the defaults. A missing file
// is not an error, the defaults are used as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		logger.Info("no config file, using defaults", zap.String("path", path))
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %q: %w", path, err)
	}
	logger.Info("config loaded", zap.String("path", path))
	return cfg, nil
}

func (c Config) validate() error {
	if c.CanvasWidth < 1 || c.CanvasHeight < 1 {
		return fmt.Errorf("canvas size %dx%d is not positive", c.CanvasWidth, c.CanvasHeight)
	}
	if c.BrushWidth < 1 {
		return fmt.Errorf("brush width %d is not positive", c.BrushWidth)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("palette is empty")
	}
	_, err := c.Colors()
	return err
}

// Colors parses the palette hex strings.
func (c Config) Colors() ([]color.Color, error) {
	out := make([]color.Color, 0, len(c.Palette))
	for _, hex := range c.Palette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", hex, err)
		}
		out = append(out, col)
	}
	return out, nil
}
