package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/proximity"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName+".yaml"), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultValues(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 60, c.TickRate)
	assert.Equal(t, 100*time.Millisecond, c.ReportInterval)
	assert.Equal(t, grid.Default(), c.WorldGrid())
	assert.Equal(t, []float32{0, 20, 40}, c.Camera.Position)
	assert.Equal(t, []float32{0, 0, 0}, c.Camera.LookAt)
	assert.Equal(t, input.DefaultPreset, c.Bindings.Preset)
	assert.Equal(t, 1280, c.Window.Width)

	limits := c.Limits()
	assert.Equal(t, camera.DefaultLimits(grid.Default()).Bounds, limits.Bounds)
	assert.InDelta(t, camera.PitchLimit, limits.PitchLimit, 1e-6)
	assert.Equal(t, float32(1), limits.TurnRate)
	assert.Equal(t, float32(1), limits.MoveSpeed)

	h := c.Highlighter()
	assert.Equal(t, proximity.NewHighlighter(mgl32.Vec3{0, 10, 0}), h)
}

func TestDefault_MatchesEmptyLoad(t *testing.T) {
	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, c, Default())
	assert.NoError(t, Default().Validate())
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := writeConfig(t, `
logLevel: debug
reportInterval: 250ms
ground: true
grid:
  sizeX: 40
  sizeY: 60
  intervalX: 5
  intervalY: 20
camera:
  position: [1, 5, 2]
  moveSpeed: 4
landmark:
  actionRadius: 12
bindings:
  preset: ijkl
  overrides:
    pitchUp: q
`)
	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 250*time.Millisecond, c.ReportInterval)
	assert.True(t, c.Ground)
	assert.Equal(t, grid.Grid{SizeX: 40, SizeY: 60, IntervalX: 5, IntervalY: 20}, c.WorldGrid())
	assert.Equal(t, float32(4), c.Limits().MoveSpeed)
	assert.Equal(t, float32(12), c.Highlighter().Radius)

	opts := c.SceneOptions()
	assert.True(t, opts.Ground)
	assert.Equal(t, mgl32.Vec3{1, 5, 2}, opts.Camera.Position)

	b, err := c.KeyBindings()
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyQ), b[input.PitchUp])
	assert.Equal(t, uint32(common.KeyJ), b[input.YawLeft])
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FLYCAM_GRID_SIZEX", "200")
	t.Setenv("FLYCAM_BINDINGS_PRESET", "ijkl")

	c, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, float32(200), c.Grid.SizeX)
	assert.Equal(t, "ijkl", c.Bindings.Preset)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"fractional interval": "grid:\n  intervalX: 2.5\n",
		"zero interval":       "grid:\n  intervalY: 0\n",
		"negative size":       "grid:\n  sizeX: -1\n",
		"too many lines":      "grid:\n  sizeX: 1000000000\n",
		"unknown preset":      "bindings:\n  preset: dvorak\n",
		"unknown key":         "bindings:\n  overrides:\n    yawLeft: f13\n",
		"short vector":        "camera:\n  position: [1, 2]\n",
		"bad colour":          "landmark:\n  normalColour: [0, 0, 300]\n",
		"zero speed":          "camera:\n  moveSpeed: 0\n",
		"zero tick rate":      "tickRate: 0\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	_, err := Load(writeConfig(t, "grid: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestFovRadians(t *testing.T) {
	c := Default()
	assert.InDelta(t, math.Pi/4, c.FovRadians(), 1e-6)
}
