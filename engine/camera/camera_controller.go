package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController owns the fly camera's transform and advances it from per-frame actions.
// All methods are safe for concurrent use; readers never observe a partially applied frame.
type CameraController interface {
	// Update applies one frame of actions and returns the resulting state.
	//
	// Parameters:
	//   - actions: the logical inputs active this frame
	//   - dt: elapsed seconds since the previous frame
	//
	// Returns:
	//   - State: the state after the update
	Update(actions Actions, dt float32) State

	// State returns a snapshot of the current transform.
	//
	// Returns:
	//   - State: position and angles
	State() State

	// SetState replaces the transform. Pitch is clamped to the pitch limit and X/Z to the bounds.
	//
	// Parameters:
	//   - s: the new state
	SetState(s State)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - x, y, z: world-space camera position
	Position() (x, y, z float32)

	// Orientation returns the camera rotation as a quaternion.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Orientation() mgl32.Quat

	// Limits returns the rates and bounds applied on each update.
	//
	// Returns:
	//   - Limits: the controller's limits
	Limits() Limits
}
