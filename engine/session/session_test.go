package session

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/proximity"
	"github.com/Carmen-Shannon/oxy-flycam/engine/reporter"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, world *scene.World) *Session {
	t.Helper()
	bindings, err := input.Preset("arrows")
	require.NoError(t, err)
	cc := camera.NewCameraController(camera.WithPosition(0, 20, 40), camera.WithLookAt(0, 0, 0))

	var opts []Option
	if world != nil {
		opts = append(opts, WithHighlighter(proximity.NewHighlighter(mgl32.Vec3{0, 10, 0}), world))
	}
	return New(cc, bindings, opts...)
}

func TestTick_MovesCameraFromKeys(t *testing.T) {
	s := newSession(t, nil)
	keys := input.NewKeyState()
	keys.KeyDown(common.KeyW)

	f := s.Tick(keys, 1)
	assert.True(t, f.Actions.MoveForward)
	assert.InDelta(t, 39, f.State.Position.Z(), 1e-4)
	assert.InDelta(t, 20, f.State.Position.Y(), 1e-4)
}

func TestTick_ReadoutOnInterval(t *testing.T) {
	s := newSession(t, nil)
	keys := input.NewKeyState()

	f := s.Tick(keys, 0.05)
	assert.False(t, f.ReadoutChanged)
	assert.Empty(t, s.Readout())

	f = s.Tick(keys, 0.05)
	assert.True(t, f.ReadoutChanged)
	assert.Equal(t, reporter.Format(f.State), f.Readout)
	assert.Equal(t, f.Readout, s.Readout())
}

func TestTick_HighlightsLandmark(t *testing.T) {
	world := scene.NewWorld()
	layout, err := scene.Build(grid.Default(), scene.DefaultOptions())
	require.NoError(t, err)
	world.Spawn(layout)
	landmark, ok := world.Landmark()
	require.True(t, ok)

	s := newSession(t, world)
	keys := input.NewKeyState()

	f := s.Tick(keys, 0)
	assert.False(t, f.Highlighted)
	c, _ := world.Colour(landmark)
	assert.Equal(t, proximity.Blue, c)

	// fly 20 units toward the landmark: distance drops from ~41 to ~22
	keys.KeyDown(common.KeyW)
	f = s.Tick(keys, 20)
	assert.True(t, f.Highlighted)
	c, _ = world.Colour(landmark)
	assert.Equal(t, proximity.Red, c)
	assert.True(t, s.Last().Highlighted)

	// and back out
	keys.KeyUp(common.KeyW)
	keys.KeyDown(common.KeyS)
	f = s.Tick(keys, 20)
	assert.False(t, f.Highlighted)
	c, _ = world.Colour(landmark)
	assert.Equal(t, proximity.Blue, c)
}
