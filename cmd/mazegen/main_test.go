package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ASCII(t *testing.T) {
	code, out, _ := runArgs(t, "-width", "3", "-height", "2", "-seed", "5")
	require.Equal(t, exitOK, code)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "+---+---+---+", lines[0])
	assert.Equal(t, "+---+---+---+", lines[4])
	assert.True(t, strings.HasPrefix(lines[1], "| s "), "source in the top-left cell")
	assert.True(t, strings.HasSuffix(lines[3], " e |"), "destination in the bottom-right cell")
}

func TestRun_Deterministic(t *testing.T) {
	_, first, _ := runArgs(t, "-width", "8", "-height", "5", "-seed", "42")
	_, second, _ := runArgs(t, "-width", "8", "-height", "5", "-seed", "42")
	assert.Equal(t, first, second)
}

func TestRun_NoSolve(t *testing.T) {
	code, out, _ := runArgs(t, "-width", "4", "-height", "4", "-seed", "1", "-no-solve")
	require.Equal(t, exitOK, code)
	assert.NotContains(t, out, "s")
	assert.NotContains(t, out, "e")
}

func TestRun_PNG(t *testing.T) {
	t.Setenv("MAZE_RENDER_CELL_SIDE", "10")
	path := filepath.Join(t.TempDir(), "maze.png")

	code, out, _ := runArgs(t, "-width", "4", "-height", "3", "-seed", "9", "-format", "png", "-out", path)
	require.Equal(t, exitOK, code)
	assert.Empty(t, out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// 2t + n*(c+2t) with c=10, t=1
	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 38, img.Bounds().Dy())
}

func TestRun_AnimationTimeoutCancels(t *testing.T) {
	t.Setenv("MAZE_ANIMATION_TIMEOUT", "50ms")
	code, out, _ := runArgs(t, "-width", "10", "-height", "10", "-animate", "-speed", "0")
	assert.Equal(t, exitCanceled, code)
	assert.Empty(t, out, "nothing rendered after a cancellation")
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runArgs(t, "-width", "0")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "grid size")

	code, _, _ = runArgs(t, "-bogus")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runArgs(t, "-h")
	assert.Equal(t, exitOK, code)
}

func TestRun_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 2\n  height: 1\n  seed: 3\n"), 0o644))

	code, out, _ := runArgs(t, "-config", path)
	require.Equal(t, exitOK, code)
	assert.Equal(t, "+---+---+\n| s   e |\n+---+---+\n", out)
}
