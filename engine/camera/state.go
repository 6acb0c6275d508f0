package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
)

// PitchEpsilon keeps the pitch limit just short of straight up/down.
const PitchEpsilon float32 = 0.01

// PitchLimit is the largest absolute pitch the controller allows, in radians.
const PitchLimit = float32(math.Pi/2) - PitchEpsilon

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	localRight   = mgl32.Vec3{1, 0, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

// State is the camera transform: a world-space position plus yaw, pitch and roll in radians.
// Orientation is composed yaw about world up, then pitch about local right, then roll about
// local forward (YXZ).
type State struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32
	Roll     float32
}

// Actions is the set of logical camera inputs active for one frame.
type Actions struct {
	YawLeft     bool
	YawRight    bool
	PitchUp     bool
	PitchDown   bool
	StrafeLeft  bool
	StrafeRight bool
	MoveBack    bool
	MoveForward bool
}

// Any reports whether at least one action is active.
func (a Actions) Any() bool {
	return a.YawLeft || a.YawRight || a.PitchUp || a.PitchDown ||
		a.StrafeLeft || a.StrafeRight || a.MoveBack || a.MoveForward
}

// Limits holds the rates and bounds applied by Step.
type Limits struct {
	// Bounds is the horizontal region the position is clamped to.
	Bounds grid.Bounds
	// TurnRate is the angular speed in radians per second for each active look action.
	TurnRate float32
	// MoveSpeed is the ground speed in world units per second for each active move action.
	MoveSpeed float32
	// PitchLimit bounds the absolute pitch.
	PitchLimit float32
}

// DefaultLimits returns the limits used when none are configured: 1 rad/s, 1 unit/s,
// PitchLimit, and the bounds of the given grid.
//
// Parameters:
//   - g: the grid whose extents bound the camera
//
// Returns:
//   - Limits: the default limits
func DefaultLimits(g grid.Grid) Limits {
	return Limits{
		Bounds:     g.Bounds(),
		TurnRate:   1,
		MoveSpeed:  1,
		PitchLimit: PitchLimit,
	}
}

// Orientation composes the yaw, pitch and roll angles into a quaternion (YXZ order).
//
// Returns:
//   - mgl32.Quat: the camera rotation
func (s State) Orientation() mgl32.Quat {
	yaw := mgl32.QuatRotate(s.Yaw, worldUp)
	pitch := mgl32.QuatRotate(s.Pitch, localRight)
	roll := mgl32.QuatRotate(s.Roll, mgl32.Vec3{0, 0, 1})
	return yaw.Mul(pitch).Mul(roll)
}

// Forward returns the camera's local forward (-Z) direction in world space.
func (s State) Forward() mgl32.Vec3 {
	return s.Orientation().Rotate(localForward)
}

// Right returns the camera's local right (+X) direction in world space.
func (s State) Right() mgl32.Vec3 {
	return s.Orientation().Rotate(localRight)
}

// GroundAxes returns the local right and forward directions projected onto the horizontal
// plane and normalized. Moving along them never changes altitude.
//
// Returns:
//   - right: flattened local right
//   - forward: flattened local forward
func (s State) GroundAxes() (right, forward mgl32.Vec3) {
	q := s.Orientation()
	return flatten(q.Rotate(localRight)), flatten(q.Rotate(localForward))
}

// Step advances the camera by one frame.
//
// Look actions change yaw and pitch at limits.TurnRate radians per second; pitch is clamped to
// [-PitchLimit, PitchLimit] and roll passes through. Move actions then translate along the
// flattened axes of the new orientation at limits.MoveSpeed, and X/Z are clamped to the bounds.
// Opposing actions cancel for both look and move. A negative dt is treated as zero.
//
// Parameters:
//   - s: the state to update in place
//   - a: the actions active this frame
//   - dt: elapsed seconds since the previous frame
//   - limits: rates and bounds
func Step(s *State, a Actions, dt float32, limits Limits) {
	dt = max(dt, 0)

	deltaYaw := direction(a.YawLeft, a.YawRight)
	deltaPitch := direction(a.PitchUp, a.PitchDown)
	s.Yaw = wrapAngle(s.Yaw + deltaYaw*limits.TurnRate*dt)
	s.Pitch = common.Clamp(s.Pitch+deltaPitch*limits.TurnRate*dt, -limits.PitchLimit, limits.PitchLimit)

	right, forward := s.GroundAxes()
	var displacement mgl32.Vec3
	displacement = displacement.Add(right.Mul(direction(a.StrafeRight, a.StrafeLeft)))
	displacement = displacement.Add(forward.Mul(direction(a.MoveForward, a.MoveBack)))

	s.Position = limits.Bounds.Clamp(s.Position.Add(displacement.Mul(limits.MoveSpeed * dt)))
}

// LookAngles returns the yaw and pitch that point the camera from one point toward another.
// Roll is zero for such a pose.
//
// Parameters:
//   - from: camera position
//   - to: target position
//
// Returns:
//   - yaw, pitch: angles in radians
func LookAngles(from, to mgl32.Vec3) (yaw, pitch float32) {
	d := to.Sub(from)
	horizontal := math.Hypot(float64(d.X()), float64(d.Z()))
	yaw = float32(math.Atan2(float64(-d.X()), float64(-d.Z())))
	pitch = float32(math.Atan2(float64(d.Y()), horizontal))
	return yaw, pitch
}

// direction maps a pair of opposing inputs to +1, -1, or 0 when both or neither are active.
func direction(positive, negative bool) float32 {
	var d float32
	if positive {
		d++
	}
	if negative {
		d--
	}
	return d
}

// wrapAngle maps an angle into [-Pi, Pi).
func wrapAngle(a float32) float32 {
	const twoPi = 2 * math.Pi
	w := math.Mod(float64(a)+math.Pi, twoPi)
	if w < 0 {
		w += twoPi
	}
	return float32(w - math.Pi)
}

func flatten(v mgl32.Vec3) mgl32.Vec3 {
	v[1] = 0
	if v.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}
