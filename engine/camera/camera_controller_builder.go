package camera

import (
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the initial world-space position.
//
// Parameters:
//   - x, y, z: world-space coordinates
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Position = mgl32.Vec3{x, y, z}
	}
}

// WithAngles sets the initial yaw, pitch and roll in radians.
//
// Parameters:
//   - yaw: rotation about world up
//   - pitch: rotation about local right
//   - roll: rotation about local forward
//
// Returns:
//   - CameraControllerOption: functional option to set the orientation
func WithAngles(yaw, pitch, roll float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.state.Yaw = yaw
		cc.state.Pitch = pitch
		cc.state.Roll = roll
	}
}

// WithLookAt orients the camera toward a point once all options are applied.
// Overrides WithAngles.
//
// Parameters:
//   - x, y, z: world-space target
//
// Returns:
//   - CameraControllerOption: functional option to aim the camera
func WithLookAt(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lookAt = &mgl32.Vec3{x, y, z}
	}
}

// WithLimits replaces all rates and bounds.
//
// Parameters:
//   - limits: the limits to apply
//
// Returns:
//   - CameraControllerOption: functional option to set the limits
func WithLimits(limits Limits) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits = limits
	}
}

// WithBounds sets the horizontal region the camera is confined to.
//
// Parameters:
//   - bounds: the X/Z bounds
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithBounds(bounds grid.Bounds) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits.Bounds = bounds
	}
}

// WithTurnRate sets the angular speed in radians per second.
//
// Parameters:
//   - rate: radians per second per active look action
//
// Returns:
//   - CameraControllerOption: functional option to set the turn rate
func WithTurnRate(rate float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits.TurnRate = rate
	}
}

// WithMoveSpeed sets the ground speed in world units per second.
//
// Parameters:
//   - speed: units per second per active move action
//
// Returns:
//   - CameraControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.limits.MoveSpeed = speed
	}
}
