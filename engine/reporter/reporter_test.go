package reporter

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	s := camera.State{Position: mgl32.Vec3{0, 20, 40}, Yaw: 0, Pitch: -0.4636476, Roll: 0}
	assert.Equal(t,
		"Position: x=0.00, y=20.00, z=40.00\n Rotation: yaw=0.00, pitch=-0.46, roll=0.00",
		Format(s),
	)

	s = camera.State{Position: mgl32.Vec3{-12.345, 20, 1.005}, Yaw: 3.14159, Pitch: 1.5, Roll: -0.004}
	assert.Equal(t,
		"Position: x=-12.35, y=20.00, z=1.00\n Rotation: yaw=3.14, pitch=1.50, roll=-0.00",
		Format(s),
	)
}

func TestTick_FiresOnInterval(t *testing.T) {
	r := New(0)
	s := camera.State{Position: mgl32.Vec3{1, 2, 3}}

	fired := 0
	for range 60 {
		if _, ok := r.Tick(1.0/60.0, s); ok {
			fired++
		}
	}
	// one second of 60 Hz frames finishes the 100 ms timer ten times, give or take rounding
	assert.InDelta(t, 10, fired, 1)
	assert.Equal(t, Format(s), r.Text())
}

func TestTick_ReturnsPreviousTextBetweenReports(t *testing.T) {
	r := New(0)
	first := camera.State{Position: mgl32.Vec3{1, 0, 0}}
	second := camera.State{Position: mgl32.Vec3{2, 0, 0}}

	text, ok := r.Tick(0.1, first)
	assert.True(t, ok)
	assert.Equal(t, Format(first), text)

	text, ok = r.Tick(0.01, second)
	assert.False(t, ok)
	assert.Equal(t, Format(first), text)
}

func TestTick_LongFrameFiresOnce(t *testing.T) {
	r := New(0)
	_, ok := r.Tick(5, camera.State{})
	assert.True(t, ok)
	_, ok = r.Tick(0, camera.State{})
	assert.False(t, ok)
}

func TestTick_LongFrameKeepsRemainder(t *testing.T) {
	r := New(0)
	_, ok := r.Tick(0.25, camera.State{})
	assert.True(t, ok)

	// 50 ms of the long frame carries over
	_, ok = r.Tick(0.04, camera.State{})
	assert.False(t, ok)
	_, ok = r.Tick(0.02, camera.State{})
	assert.True(t, ok)
}
