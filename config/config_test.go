package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

func validConfig() config.Config {
	return config.Config{
		Grid:      config.GridConfig{Width: 4, Height: 3},
		Animation: config.AnimationConfig{Speed: 10, Max: 100},
		Solve:     config.SolveConfig{Enabled: true, Source: -1, Destination: -1},
		Render:    config.RenderConfig{Format: "ASCII", Output: "-", CellSide: 10},
		Log:       config.LogConfig{Output: "stderr"},
	}
}

func TestValidate(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ascii", cfg.Render.Format, "format is normalised")
	assert.Equal(t, "info", cfg.Log.Level, "empty level defaults to info")

	tests := []struct {
		name   string
		mutate func(*config.Config)
		msg    string
	}{
		{"zero width", func(c *config.Config) { c.Grid.Width = 0 }, "grid size"},
		{"speed above max", func(c *config.Config) { c.Animation.Speed = 101 }, "animation.speed"},
		{"max below one", func(c *config.Config) { c.Animation.Max = 0.5; c.Animation.Speed = 0 }, "animation.max_speed"},
		{"negative timeout", func(c *config.Config) { c.Animation.Timeout = -1 }, "animation.timeout"},
		{"source out of grid", func(c *config.Config) { c.Solve.Source = 12 }, "solve endpoints"},
		{"unknown format", func(c *config.Config) { c.Render.Format = "svg" }, "render.format"},
		{"png without output", func(c *config.Config) { c.Render.Format = "png"; c.Render.Output = "" }, "render.output"},
		{"zero cell side", func(c *config.Config) { c.Render.CellSide = 0 }, "render.cell_side"},
		{"bad level", func(c *config.Config) { c.Log.Level = "trace" }, "log.level"},
		{"file without path", func(c *config.Config) { c.Log.Output = "file" }, "log.file_path"},
		{"metrics without listen", func(c *config.Config) { c.Metrics.Enabled = true }, "metrics.listen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, config.ErrInvalid)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestValidate_ReportsAll(t *testing.T) {
	c := validConfig()
	c.Grid.Height = -1
	c.Render.CellSide = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid size")
	assert.Contains(t, err.Error(), "render.cell_side")
}
