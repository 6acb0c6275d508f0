package session

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/config"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap_Defaults(t *testing.T) {
	stage, err := Bootstrap(config.Default(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, config.Default().WorldGrid(), stage.Grid)
	_, ok := stage.World.Landmark()
	assert.True(t, ok)

	s := stage.Controller.State()
	assert.InDelta(t, 0, s.Position.X(), 1e-6)
	assert.InDelta(t, 20, s.Position.Y(), 1e-6)
	assert.InDelta(t, 40, s.Position.Z(), 1e-6)
	assert.Negative(t, s.Pitch, "start pose looks down at the origin")

	f := stage.Session.Tick(input.NewKeyState(), 0.1)
	assert.True(t, f.ReadoutChanged)
	assert.Contains(t, f.Readout, "Position: x=0.00, y=20.00, z=40.00")
}

func TestBootstrap_UnknownPreset(t *testing.T) {
	cfg := config.Default()
	cfg.Bindings.Preset = "nope"

	_, err := Bootstrap(cfg, zerolog.Nop())
	require.ErrorIs(t, err, input.ErrUnknownPreset)
}
