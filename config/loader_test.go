package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
)

// noFiles keeps the tests independent of files in the working directory.
var noFiles = config.WithConfigPaths()

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mazegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	l := config.NewLoader(noFiles)
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height)
	assert.Zero(t, cfg.Grid.Seed)
	assert.Equal(t, 50.0, cfg.Animation.Speed)
	assert.Equal(t, 100.0, cfg.Animation.Max)
	assert.True(t, cfg.Solve.Enabled)
	assert.Equal(t, -1, cfg.Solve.Source)
	assert.Equal(t, "ascii", cfg.Render.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Empty(t, l.ConfigFile())
}

func TestLoader_File(t *testing.T) {
	path := writeFile(t, `
grid:
  width: 40
  height: 30
  seed: 99
render:
  format: png
  output: out.png
  cell_side: 12
animation:
  timeout: 2m
log:
  level: debug
`)
	l := config.NewLoader(config.WithConfigPaths("does-not-exist.yaml", path))
	cfg, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, path, l.ConfigFile())
	assert.Equal(t, 40, cfg.Grid.Width)
	assert.Equal(t, 30, cfg.Grid.Height)
	assert.Equal(t, int64(99), cfg.Grid.Seed)
	assert.Equal(t, "png", cfg.Render.Format)
	assert.Equal(t, 12, cfg.Render.CellSide)
	assert.Equal(t, 2*time.Minute, cfg.Animation.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched keys keep defaults")
}

func TestLoader_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "grid:\n  width: 40\n")
	t.Setenv("MAZE_GRID_WIDTH", "7")
	t.Setenv("MAZE_RENDER_CELL_SIDE", "9")
	t.Setenv("MAZE_LOG_FILE_PATH", "/tmp/mazegen.log")
	t.Setenv("MAZE_ANIMATION_ENABLED", "true")
	t.Setenv("MAZE_ANIMATION_SPEED", "75.5")

	cfg, err := config.NewLoader(config.WithConfigPaths(path)).Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Grid.Width)
	assert.Equal(t, 9, cfg.Render.CellSide)
	assert.Equal(t, "/tmp/mazegen.log", cfg.Log.FilePath)
	assert.True(t, cfg.Animation.Enabled)
	assert.Equal(t, 75.5, cfg.Animation.Speed)
}

func TestLoader_ConfigEnvVar(t *testing.T) {
	path := writeFile(t, "grid:\n  height: 3\n")
	t.Setenv(config.ConfigEnvVar, path)

	l := config.NewLoader(noFiles)
	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Grid.Height)
	assert.Equal(t, path, l.ConfigFile())

	t.Setenv(config.ConfigEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = config.NewLoader(noFiles).Load()
	assert.Error(t, err, "an explicitly named file must exist")
}

func TestLoader_CustomPrefix(t *testing.T) {
	t.Setenv("LAB_GRID_HEIGHT", "4")
	cfg, err := config.NewLoader(noFiles, config.WithEnvPrefix("LAB_")).Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Grid.Height)
}

func TestLoader_BadYAML(t *testing.T) {
	path := writeFile(t, "grid: [width\n")
	_, err := config.NewLoader(config.WithConfigPaths(path)).Load()
	assert.Error(t, err)
}

func TestLoader_Invalid(t *testing.T) {
	t.Setenv("MAZE_GRID_WIDTH", "0")
	_, err := config.NewLoader(noFiles).Load()
	assert.ErrorIs(t, err, config.ErrInvalid)
}
