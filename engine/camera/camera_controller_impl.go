package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraControllerImpl struct {
	mu *sync.Mutex

	state  State
	limits Limits

	// lookAt, when set by an option, overrides yaw and pitch once all options are applied.
	lookAt *mgl32.Vec3
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a fly camera controller.
// Defaults: position (0, 0, 0), all angles zero, and DefaultLimits of the default grid.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:     &sync.Mutex{},
		limits: DefaultLimits(grid.Default()),
	}
	for _, option := range options {
		option(cc)
	}
	if cc.lookAt != nil {
		cc.state.Yaw, cc.state.Pitch = LookAngles(cc.state.Position, *cc.lookAt)
		cc.state.Roll = 0
		cc.lookAt = nil
	}
	cc.state = cc.constrain(cc.state)
	return cc
}

func (cc *cameraControllerImpl) Update(actions Actions, dt float32) State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	Step(&cc.state, actions, dt, cc.limits)
	return cc.state
}

func (cc *cameraControllerImpl) State() State {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state
}

func (cc *cameraControllerImpl) SetState(s State) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.state = cc.constrain(s)
}

func (cc *cameraControllerImpl) Position() (x, y, z float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Position.Elem()
}

func (cc *cameraControllerImpl) Orientation() mgl32.Quat {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.state.Orientation()
}

func (cc *cameraControllerImpl) Limits() Limits {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.limits
}

// constrain applies the pitch limit and horizontal bounds without advancing time.
func (cc *cameraControllerImpl) constrain(s State) State {
	s.Pitch = common.Clamp(s.Pitch, -cc.limits.PitchLimit, cc.limits.PitchLimit)
	s.Position = cc.limits.Bounds.Clamp(s.Position)
	return s
}
