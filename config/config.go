// Package config loads mazegen settings with koanf: built-in defaults, then
// an optional YAML file, then MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full mazegen configuration.
type Config struct {
	Grid      GridConfig      `koanf:"grid"`
	Animation AnimationConfig `koanf:"animation"`
	Solve     SolveConfig     `koanf:"solve"`
	Render    RenderConfig    `koanf:"render"`
	Log       LogConfig       `koanf:"log"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// GridConfig sizes the maze and seeds its generator.
type GridConfig struct {
	Width  int   `koanf:"width"`
	Height int   `koanf:"height"`
	Seed   int64 `koanf:"seed"` // 0 seeds from the clock
}

// AnimationConfig paces generation and solving.
type AnimationConfig struct {
	Enabled bool          `koanf:"enabled"`
	Speed   float64       `koanf:"speed"` // 0 (slowest) .. MaxSpeed (fastest)
	Max     float64       `koanf:"max_speed"`
	Timeout time.Duration `koanf:"timeout"` // 0 disables the deadline
}

// SolveConfig selects the solver endpoints. Negative values pick the
// defaults: the first cell and the last cell.
type SolveConfig struct {
	Enabled     bool `koanf:"enabled"`
	Source      int  `koanf:"source"`
	Destination int  `koanf:"destination"`
}

// RenderConfig controls the output picture.
type RenderConfig struct {
	Format   string `koanf:"format"` // ascii, png, none
	Output   string `koanf:"output"` // file path, "-" for stdout
	CellSide int    `koanf:"cell_side"`
	Decorate bool   `koanf:"decorate"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// MetricsConfig exposes Prometheus metrics while the run lasts.
type MetricsConfig struct {
	Enabled bool   `koanf:"enabled"`
	Listen  string `koanf:"listen"`
	Path    string `koanf:"path"`
}

// Validate checks every section and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		errs = append(errs, fmt.Sprintf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}

	if c.Animation.Max < 1 {
		errs = append(errs, fmt.Sprintf("animation.max_speed must be at least 1, got %g", c.Animation.Max))
	}
	if c.Animation.Speed < 0 || c.Animation.Speed > c.Animation.Max {
		errs = append(errs, fmt.Sprintf("animation.speed must be within [0,%g], got %g", c.Animation.Max, c.Animation.Speed))
	}
	if c.Animation.Timeout < 0 {
		errs = append(errs, "animation.timeout must be non-negative")
	}

	n := c.Grid.Width * c.Grid.Height
	if c.Solve.Source >= n || c.Solve.Destination >= n {
		errs = append(errs, fmt.Sprintf("solve endpoints must be below %d, got %d and %d", n, c.Solve.Source, c.Solve.Destination))
	}

	c.Render.Format = strings.ToLower(c.Render.Format)
	validFormats := map[string]bool{"ascii": true, "png": true, "none": true}
	if !validFormats[c.Render.Format] {
		errs = append(errs, fmt.Sprintf("render.format must be one of: ascii, png, none, got %s", c.Render.Format))
	}
	if c.Render.Format == "png" && c.Render.Output == "" {
		errs = append(errs, "render.output is required for png")
	}
	if c.Render.CellSide < 1 {
		errs = append(errs, fmt.Sprintf("render.cell_side must be positive, got %d", c.Render.CellSide))
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	if c.Log.Output == "file" && c.Log.FilePath == "" {
		errs = append(errs, "log.file_path is required for file output")
	}

	if c.Metrics.Enabled && c.Metrics.Listen == "" {
		errs = append(errs, "metrics.listen is required when metrics are enabled")
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}

	return nil
}
