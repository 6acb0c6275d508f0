// Package session runs one frame of the fly camera: input resolution, the controller
// step, the landmark proximity check and the throttled readout.
package session

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/proximity"
	"github.com/Carmen-Shannon/oxy-flycam/engine/reporter"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/rs/zerolog"
)

// Frame is the outcome of one Tick.
type Frame struct {
	State   camera.State
	Actions camera.Actions
	// Readout is the latest reporter text; ReadoutChanged is true on frames where it was refreshed.
	Readout        string
	ReadoutChanged bool
	// Highlighted is true while the camera is within range of the landmark.
	Highlighted bool
}

// Session owns the per-frame pipeline. Tick must be called from a single goroutine;
// Readout and Last may be called from any goroutine.
type Session struct {
	mu *sync.Mutex

	controller  camera.CameraController
	bindings    input.Bindings
	reporter    *reporter.Reporter
	highlighter *proximity.Highlighter
	world       *scene.World
	logger      zerolog.Logger

	last        Frame
	highlighted bool
}

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithReporter replaces the default 100 ms reporter.
func WithReporter(r *reporter.Reporter) Option {
	return func(s *Session) {
		s.reporter = r
	}
}

// WithHighlighter enables the landmark proximity check. Each frame the landmark's material in
// world is set to the highlighter's colour for the new camera position.
//
// Parameters:
//   - h: the proximity check
//   - world: the scene store holding the landmark
//
// Returns:
//   - Option: option function to apply
func WithHighlighter(h proximity.Highlighter, world *scene.World) Option {
	return func(s *Session) {
		s.highlighter = &h
		s.world = world
	}
}

// WithLogger sets the logger for readouts and landmark transitions.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// New creates a Session.
//
// Parameters:
//   - controller: the camera controller to drive
//   - bindings: action to key bindings
//   - options: functional options
//
// Returns:
//   - *Session: the session
func New(controller camera.CameraController, bindings input.Bindings, options ...Option) *Session {
	s := &Session{
		mu:         &sync.Mutex{},
		controller: controller,
		bindings:   bindings,
		reporter:   reporter.New(reporter.DefaultInterval),
		logger:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Tick runs one frame: resolve held keys to actions, step the controller, recolour the
// landmark and advance the reporter, in that order.
//
// Parameters:
//   - keys: the held-key state
//   - dt: elapsed seconds since the previous frame
//
// Returns:
//   - Frame: the frame outcome
func (s *Session) Tick(keys input.KeySource, dt float32) Frame {
	actions := s.bindings.Resolve(keys)
	state := s.controller.Update(actions, dt)

	highlighted := s.highlighted
	if s.highlighter != nil {
		highlighted = s.highlighter.InRange(state.Position)
		if s.world != nil {
			s.world.SetLandmarkColour(s.highlighter.Colour(state.Position))
		}
		if highlighted != s.highlighted {
			s.logger.Debug().Bool("highlighted", highlighted).Msg("landmark proximity changed")
		}
	}

	text, changed := s.reporter.Tick(dt, state)
	if changed {
		s.logger.Debug().Str("readout", text).Msg("camera")
	}

	f := Frame{
		State:          state,
		Actions:        actions,
		Readout:        text,
		ReadoutChanged: changed,
		Highlighted:    highlighted,
	}

	s.mu.Lock()
	s.highlighted = highlighted
	s.last = f
	s.mu.Unlock()
	return f
}

// Readout returns the latest reporter text.
func (s *Session) Readout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last.Readout
}

// Last returns the most recent frame.
func (s *Session) Last() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

// Controller returns the driven camera controller.
func (s *Session) Controller() camera.CameraController {
	return s.controller
}
