// Command flycam-term flies a camera over a grid in the terminal, drawn as a top-down map
// with the camera readout underneath. Escape or Ctrl-C quits.
package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-flycam/config"
	"github.com/Carmen-Shannon/oxy-flycam/engine"
	"github.com/Carmen-Shannon/oxy-flycam/engine/session"
	"github.com/Carmen-Shannon/oxy-flycam/engine/terminal"
	"github.com/Carmen-Shannon/oxy-flycam/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// drawRate caps terminal redraws per second.
const drawRate = 30

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "flycam-term:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	// the screen owns the terminal, so logs only go to the configured file
	logger := zerolog.Nop()
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.New(logging.Options{Level: cfg.LogLevel, File: f})
	}

	stage, err := session.Bootstrap(cfg, logger)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	term, err := terminal.New(screen, stage.Grid,
		terminal.WithWorld(stage.World),
		terminal.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	eng := engine.NewEngine(
		engine.WithTickRate(float64(cfg.TickRate)),
		engine.WithRenderFrameLimit(drawRate),
		engine.WithLogger(logger),
	)
	eng.SetTickCallback(func(dt float32) {
		term.SetFrame(stage.Session.Tick(term, dt))
	})
	eng.SetRenderCallback(func(float32) {
		term.Draw()
	})

	go term.PollEvents(eng.Quit)

	eng.Run()
	return nil
}
