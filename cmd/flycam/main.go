// Command flycam flies a camera over a grid in a GLFW window rendered with WebGPU.
// The camera readout is shown in the window title.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/Carmen-Shannon/oxy-flycam/config"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/renderer"
	"github.com/Carmen-Shannon/oxy-flycam/engine/session"
	"github.com/Carmen-Shannon/oxy-flycam/engine/window"
	"github.com/Carmen-Shannon/oxy-flycam/logging"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "flycam:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	stage, err := session.Bootstrap(cfg, logger)
	if err != nil {
		return err
	}

	// ── Window + Camera ─────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	cam := camera.NewCamera(
		camera.WithFov(cfg.FovRadians()),
		camera.WithController(stage.Controller),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	presentMode := renderer.PresentModeUncapped
	if cfg.Window.VSync {
		presentMode = renderer.PresentModeVSync
	}
	r, err := renderer.NewRenderer(win, cam, stage.World,
		renderer.WithPresentMode(presentMode),
		renderer.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	defer r.Release()

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithTickRate(float64(cfg.TickRate)),
		engine.WithLogger(logger),
		engine.WithProfiling(logger.GetLevel() <= zerolog.DebugLevel),
	)

	keys := input.NewKeyState()
	win.SetKeyDownCallback(keys.KeyDown)
	win.SetKeyUpCallback(keys.KeyUp)
	win.SetFocusCallback(func(focused bool) {
		// key-up events are not delivered while unfocused
		if !focused {
			keys.Reset()
		}
	})

	eng.SetTickCallback(func(dt float32) {
		f := stage.Session.Tick(keys, dt)
		if f.ReadoutChanged {
			win.SetTitle(titleText(f.Readout))
		}
	})

	logger.Info().Str("title", cfg.Window.Title).Msg("starting flycam")
	eng.Run()
	return nil
}

// titleText flattens the two readout lines onto the single-line title bar.
func titleText(readout string) string {
	return strings.ReplaceAll(readout, "\n", " |")
}

// newLogger logs to stderr and, when configured, to a file.
func newLogger(cfg config.Config) (zerolog.Logger, func(), error) {
	opts := logging.Options{Level: cfg.LogLevel, Console: os.Stderr}
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return zerolog.Nop(), nil, err
		}
		opts.File = f
		closeLog = func() { _ = f.Close() }
	}
	return logging.New(opts), closeLog, nil
}
