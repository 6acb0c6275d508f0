package camera

import (
	"math"
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-4

func defaultLimits() Limits {
	return DefaultLimits(grid.Default())
}

func TestStep_ForwardFromRest(t *testing.T) {
	s := State{Position: mgl32.Vec3{0, 20, 0}}
	Step(&s, Actions{MoveForward: true}, 1, defaultLimits())

	assert.InDelta(t, 0, s.Position.X(), eps)
	assert.InDelta(t, 20, s.Position.Y(), eps)
	assert.InDelta(t, -1, s.Position.Z(), eps)
	assert.Zero(t, s.Yaw)
	assert.Zero(t, s.Pitch)
}

func TestStep_YawLeftTurnsCounterClockwise(t *testing.T) {
	s := State{}
	Step(&s, Actions{YawLeft: true}, 0.5, defaultLimits())
	assert.InDelta(t, 0.5, s.Yaw, eps)

	Step(&s, Actions{YawRight: true}, 0.25, defaultLimits())
	assert.InDelta(t, 0.25, s.Yaw, eps)

	// forward has swung toward -X
	assert.Less(t, s.Forward().X(), float32(0))
}

func TestStep_StrafeFollowsYaw(t *testing.T) {
	s := State{Yaw: math.Pi / 2}
	Step(&s, Actions{StrafeRight: true}, 2, defaultLimits())

	// with a quarter turn to the left, local right points down -Z
	assert.InDelta(t, 0, s.Position.X(), eps)
	assert.InDelta(t, -2, s.Position.Z(), eps)
}

func TestStep_OpposingActionsCancel(t *testing.T) {
	start := State{Position: mgl32.Vec3{3, 7, -4}, Yaw: 0.3, Pitch: -0.2, Roll: 0.1}
	s := start
	Step(&s, Actions{
		YawLeft: true, YawRight: true,
		PitchUp: true, PitchDown: true,
		StrafeLeft: true, StrafeRight: true,
		MoveBack: true, MoveForward: true,
	}, 1, defaultLimits())

	assert.InDelta(t, start.Yaw, s.Yaw, eps)
	assert.InDelta(t, start.Pitch, s.Pitch, eps)
	assert.InDelta(t, start.Roll, s.Roll, eps)
	assert.True(t, start.Position.ApproxEqualThreshold(s.Position, eps))
}

func TestStep_NoActionsIsIdentity(t *testing.T) {
	start := State{Position: mgl32.Vec3{1, 2, 3}, Yaw: 1, Pitch: 0.5, Roll: 0.25}
	s := start
	Step(&s, Actions{}, 0.016, defaultLimits())
	assert.Equal(t, start, s)
}

func TestStep_PitchStaysInsideLimit(t *testing.T) {
	limits := defaultLimits()

	up := State{}
	for range 100 {
		Step(&up, Actions{PitchUp: true}, 0.1, limits)
		assert.Less(t, up.Pitch, float32(math.Pi/2))
	}
	assert.InDelta(t, PitchLimit, up.Pitch, eps)

	down := State{}
	Step(&down, Actions{PitchDown: true}, 10, limits)
	assert.InDelta(t, -PitchLimit, down.Pitch, eps)
	assert.Greater(t, down.Pitch, float32(-math.Pi/2))
}

func TestStep_PositionStaysInBounds(t *testing.T) {
	limits := defaultLimits()
	limits.MoveSpeed = 37

	cases := []struct {
		name    string
		yaw     float32
		actions Actions
		want    mgl32.Vec3
	}{
		{"forward hits -Z", 0, Actions{MoveForward: true}, mgl32.Vec3{0, 5, -500}},
		{"back hits +Z", 0, Actions{MoveBack: true}, mgl32.Vec3{0, 5, 500}},
		{"right hits +X", 0, Actions{StrafeRight: true}, mgl32.Vec3{50, 5, 0}},
		{"left hits -X", 0, Actions{StrafeLeft: true}, mgl32.Vec3{-50, 5, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := State{Position: mgl32.Vec3{0, 5, 0}, Yaw: tc.yaw}
			for range 200 {
				Step(&s, tc.actions, 0.5, limits)
				assert.True(t, limits.Bounds.Contains(s.Position))
			}
			assert.InDelta(t, tc.want.X(), s.Position.X(), eps)
			assert.InDelta(t, tc.want.Y(), s.Position.Y(), eps)
			assert.InDelta(t, tc.want.Z(), s.Position.Z(), eps)
		})
	}
}

func TestStep_FrameRateIndependent(t *testing.T) {
	limits := defaultLimits()
	actions := Actions{YawLeft: true, PitchDown: true}

	single := State{Position: mgl32.Vec3{0, 20, 40}}
	Step(&single, actions, 1, limits)

	split := State{Position: mgl32.Vec3{0, 20, 40}}
	for range 10 {
		Step(&split, actions, 0.1, limits)
	}

	assert.InDelta(t, single.Yaw, split.Yaw, eps)
	assert.InDelta(t, single.Pitch, split.Pitch, eps)

	// pure translation along a fixed heading also splits cleanly
	a := State{Yaw: 0.7}
	Step(&a, Actions{MoveForward: true, StrafeLeft: true}, 1, limits)
	b := State{Yaw: 0.7}
	for range 4 {
		Step(&b, Actions{MoveForward: true, StrafeLeft: true}, 0.25, limits)
	}
	assert.True(t, a.Position.ApproxEqualThreshold(b.Position, eps))
}

func TestStep_MovementKeepsAltitude(t *testing.T) {
	limits := defaultLimits()
	s := State{Position: mgl32.Vec3{0, 12.5, 0}, Yaw: 0.4, Pitch: -1.2, Roll: 0.6}

	moves := []Actions{
		{MoveForward: true},
		{MoveBack: true},
		{StrafeLeft: true},
		{StrafeRight: true},
		{MoveForward: true, StrafeRight: true, PitchUp: true},
	}
	for _, a := range moves {
		Step(&s, a, 0.3, limits)
		assert.InDelta(t, 12.5, s.Position.Y(), eps)
	}
}

func TestStep_ForwardSpeedIgnoresPitch(t *testing.T) {
	s := State{Pitch: -1.4}
	Step(&s, Actions{MoveForward: true}, 1, defaultLimits())
	assert.InDelta(t, 1, s.Position.Len(), eps)
}

func TestStep_NegativeDtIsIgnored(t *testing.T) {
	s := State{Position: mgl32.Vec3{1, 1, 1}}
	Step(&s, Actions{MoveForward: true, YawLeft: true}, -1, defaultLimits())
	assert.Equal(t, State{Position: mgl32.Vec3{1, 1, 1}}, s)
}

func TestStep_YawWraps(t *testing.T) {
	s := State{}
	Step(&s, Actions{YawLeft: true}, 4, defaultLimits())
	assert.InDelta(t, 4-2*math.Pi, s.Yaw, eps)
}

func TestLookAngles(t *testing.T) {
	yaw, pitch := LookAngles(mgl32.Vec3{0, 20, 40}, mgl32.Vec3{})
	assert.InDelta(t, 0, yaw, eps)
	assert.InDelta(t, -math.Atan(0.5), pitch, eps)

	s := State{Position: mgl32.Vec3{0, 20, 40}, Yaw: yaw, Pitch: pitch}
	toOrigin := mgl32.Vec3{}.Sub(s.Position).Normalize()
	assert.True(t, s.Forward().ApproxEqualThreshold(toOrigin, eps))

	yaw, _ = LookAngles(mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0})
	assert.InDelta(t, math.Pi/2, yaw, eps)
}

func TestController_StartsLookingAtOrigin(t *testing.T) {
	cc := NewCameraController(WithPosition(0, 20, 40), WithLookAt(0, 0, 0))

	s := cc.State()
	assert.Equal(t, mgl32.Vec3{0, 20, 40}, s.Position)
	assert.InDelta(t, -math.Atan(0.5), s.Pitch, eps)
	assert.InDelta(t, 0, s.Yaw, eps)
}

func TestController_SetStateConstrains(t *testing.T) {
	cc := NewCameraController()
	cc.SetState(State{Position: mgl32.Vec3{900, 3, -900}, Pitch: 3})

	s := cc.State()
	assert.Equal(t, mgl32.Vec3{50, 3, -500}, s.Position)
	assert.InDelta(t, PitchLimit, s.Pitch, eps)
}

func TestController_ConcurrentReadersSeeWholeFrames(t *testing.T) {
	cc := NewCameraController(WithMoveSpeed(10))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 1000 {
			cc.Update(Actions{MoveForward: true, YawLeft: true}, 0.01)
		}
	}()
	for range 1000 {
		s := cc.State()
		require.InDelta(t, 0, s.Position.Y(), eps)
		require.True(t, cc.Limits().Bounds.Contains(s.Position))
	}
	wg.Wait()
}
