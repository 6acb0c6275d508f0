package input

import (
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAction(t *testing.T) {
	for _, a := range Actions() {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}

	got, err := ParseAction("pitchup")
	require.NoError(t, err)
	assert.Equal(t, PitchUp, got)

	_, err = ParseAction("jump")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, []string{"arrows", "ijkl"}, Presets())

	arrows, err := Preset("arrows")
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyLeft), arrows[YawLeft])
	assert.Equal(t, uint32(common.KeyW), arrows[MoveForward])
	assert.Len(t, arrows, len(Actions()))

	ijkl, err := Preset("IJKL")
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyI), ijkl[PitchUp])
	assert.Equal(t, uint32(common.KeyK), ijkl[PitchDown])

	_, err = Preset("dvorak")
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestPreset_ReturnsCopy(t *testing.T) {
	b, err := Preset("arrows")
	require.NoError(t, err)
	b[YawLeft] = common.KeyQ

	again, err := Preset("arrows")
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyLeft), again[YawLeft])
}

func TestParseBindings(t *testing.T) {
	b, err := ParseBindings("", map[string]string{"pitchup": "q", "PitchDown": "E"})
	require.NoError(t, err)
	assert.Equal(t, uint32(common.KeyQ), b[PitchUp])
	assert.Equal(t, uint32(common.KeyE), b[PitchDown])
	assert.Equal(t, uint32(common.KeyRight), b[YawRight])

	_, err = ParseBindings("arrows", map[string]string{"roll": "q"})
	assert.ErrorIs(t, err, ErrUnknownAction)

	_, err = ParseBindings("arrows", map[string]string{"yawLeft": "f13"})
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = ParseBindings("nope", nil)
	assert.ErrorIs(t, err, ErrUnknownPreset)
}

func TestBindings_Resolve(t *testing.T) {
	b, err := Preset("arrows")
	require.NoError(t, err)

	keys := NewKeyState()
	assert.Equal(t, camera.Actions{}, b.Resolve(keys))

	keys.KeyDown(common.KeyW)
	keys.KeyDown(common.KeyLeft)
	keys.KeyDown(common.KeyI) // unbound in this preset
	assert.Equal(t, camera.Actions{MoveForward: true, YawLeft: true}, b.Resolve(keys))

	keys.KeyUp(common.KeyW)
	assert.Equal(t, camera.Actions{YawLeft: true}, b.Resolve(keys))

	keys.Reset()
	assert.False(t, b.Resolve(keys).Any())
}

func TestBindings_String(t *testing.T) {
	b := Bindings{YawLeft: common.KeyLeft, MoveForward: common.KeyW}
	assert.Equal(t, "yawLeft=left moveForward=w", b.String())
}

func TestHoldState_ExpiresAfterWindow(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldState(100*time.Millisecond, func() time.Time { return now })

	assert.False(t, h.Pressed(common.KeyW))

	h.Press(common.KeyW)
	assert.True(t, h.Pressed(common.KeyW))

	now = now.Add(80 * time.Millisecond)
	assert.True(t, h.Pressed(common.KeyW))

	// a repeat event extends the hold
	h.Press(common.KeyW)
	now = now.Add(80 * time.Millisecond)
	assert.True(t, h.Pressed(common.KeyW))

	now = now.Add(50 * time.Millisecond)
	assert.False(t, h.Pressed(common.KeyW))
}

func TestHoldState_Release(t *testing.T) {
	h := NewHoldState(0, nil)
	h.Press(common.KeyA)
	h.Release(common.KeyA)
	assert.False(t, h.Pressed(common.KeyA))
}

// racingSource releases W after the first per-key read, the way a key-up callback
// landing mid-frame would.
type racingSource struct {
	keys      *KeyState
	reads     int
	snapshots int
}

func (r *racingSource) Pressed(key uint32) bool {
	r.reads++
	held := r.keys.Pressed(key)
	r.keys.KeyUp(common.KeyW)
	return held
}

func (r *racingSource) Snapshot() KeySet {
	r.snapshots++
	return r.keys.Snapshot()
}

func TestBindings_ResolveReadsOneSnapshot(t *testing.T) {
	b, err := Preset("arrows")
	require.NoError(t, err)

	keys := NewKeyState()
	keys.KeyDown(common.KeyW)
	keys.KeyDown(common.KeyS)
	src := &racingSource{keys: keys}

	// opposing keys from the same instant, so both are active together
	assert.Equal(t, camera.Actions{MoveForward: true, MoveBack: true}, b.Resolve(src))
	assert.Equal(t, 1, src.snapshots)
	assert.Zero(t, src.reads)
}

func TestKeyState_SnapshotIsACopy(t *testing.T) {
	keys := NewKeyState()
	keys.KeyDown(common.KeyA)
	snap := keys.Snapshot()

	keys.KeyUp(common.KeyA)
	keys.KeyDown(common.KeyD)

	assert.True(t, snap.Pressed(common.KeyA))
	assert.False(t, snap.Pressed(common.KeyD))
	assert.False(t, keys.Pressed(common.KeyA))
}

func TestHoldState_Snapshot(t *testing.T) {
	now := time.Unix(0, 0)
	h := NewHoldState(100*time.Millisecond, func() time.Time { return now })

	h.Press(common.KeyW)
	now = now.Add(60 * time.Millisecond)
	h.Press(common.KeyA)
	now = now.Add(60 * time.Millisecond)

	snap := h.Snapshot()
	assert.False(t, snap.Pressed(common.KeyW))
	assert.True(t, snap.Pressed(common.KeyA))
	assert.False(t, h.Pressed(common.KeyW))
}
