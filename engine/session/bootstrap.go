package session

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-flycam/config"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/reporter"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/rs/zerolog"
)

// Stage is the startup state shared by both frontends.
type Stage struct {
	Grid       grid.Grid
	Layout     scene.Layout
	World      *scene.World
	Controller camera.CameraController
	Session    *Session
}

// Bootstrap builds the scene, spawns it into a world and creates the controller and session
// for a configuration.
//
// Parameters:
//   - cfg: a validated configuration
//   - logger: logger handed to the session
//
// Returns:
//   - Stage: the startup state
//   - error: an error if the scene or key bindings could not be built
func Bootstrap(cfg config.Config, logger zerolog.Logger) (Stage, error) {
	g := cfg.WorldGrid()
	layout, err := scene.Build(g, cfg.SceneOptions())
	if err != nil {
		return Stage{}, fmt.Errorf("failed to build scene: %w", err)
	}

	bindings, err := cfg.KeyBindings()
	if err != nil {
		return Stage{}, fmt.Errorf("failed to resolve key bindings: %w", err)
	}

	world := scene.NewWorld()
	world.Spawn(layout)

	start := layout.Camera
	controller := camera.NewCameraController(
		camera.WithLimits(cfg.Limits()),
		camera.WithPosition(start.Position.Elem()),
		camera.WithLookAt(start.LookAt.Elem()),
	)

	s := New(controller, bindings,
		WithReporter(reporter.New(cfg.ReportInterval)),
		WithHighlighter(cfg.Highlighter(), world),
		WithLogger(logger),
	)

	logger.Info().
		Int("entities", world.Count()).
		Str("bindings", bindings.String()).
		Interface("grid", g).
		Msg("scene ready")

	return Stage{
		Grid:       g,
		Layout:     layout,
		World:      world,
		Controller: controller,
		Session:    s,
	}, nil
}
