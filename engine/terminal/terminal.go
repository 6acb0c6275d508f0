// Package terminal is a text frontend for the fly camera: a top-down map of the grid centred
// on the camera, with the position/orientation readout underneath.
package terminal

import (
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/session"
	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"
	"github.com/rs/zerolog"
)

const (
	// DefaultScale is the number of world units per map column.
	DefaultScale float32 = 2
	// readoutRows is the number of screen rows reserved for the readout.
	readoutRows = 2
)

// arrows indexes camera heading glyphs clockwise from screen-up in 45 degree steps.
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

var (
	gridStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	cameraStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	readoutStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Terminal renders frames to a tcell screen and turns key events into held keys.
// HandleEvent, SetFrame and Draw may be called from different goroutines.
type Terminal struct {
	mu *sync.Mutex

	screen tcell.Screen
	hold   *input.HoldState
	lines  []grid.LineSpec
	world  *scene.World
	scale  float32
	logger zerolog.Logger

	frame session.Frame
	cells []rune
}

var _ input.Snapshotter = &Terminal{}

// Option is a functional option for configuring a Terminal.
type Option func(*Terminal)

// WithScale sets the world units per map column. Rows cover twice as much since terminal
// cells are about twice as tall as they are wide.
func WithScale(scale float32) Option {
	return func(t *Terminal) {
		t.scale = common.PositiveOr(scale, t.scale)
	}
}

// WithHoldState replaces the default key hold tracker.
func WithHoldState(h *input.HoldState) Option {
	return func(t *Terminal) {
		t.hold = h
	}
}

// WithWorld draws the world's cuboids (the landmark) in their current material colour.
func WithWorld(w *scene.World) Option {
	return func(t *Terminal) {
		t.world = w
	}
}

// WithLogger sets the terminal logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(t *Terminal) {
		t.logger = logger
	}
}

// New creates a Terminal drawing into an initialized screen.
//
// Parameters:
//   - screen: an initialized tcell screen
//   - g: the world grid drawn on the map
//   - options: functional options
//
// Returns:
//   - *Terminal: the terminal
//   - error: the grid's validation error, if any
func New(screen tcell.Screen, g grid.Grid, options ...Option) (*Terminal, error) {
	lines, err := g.Lines()
	if err != nil {
		return nil, err
	}

	t := &Terminal{
		mu:     &sync.Mutex{},
		screen: screen,
		lines:  lines,
		scale:  DefaultScale,
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		opt(t)
	}
	if t.hold == nil {
		t.hold = input.NewHoldState(input.DefaultHoldWindow, nil)
	}
	return t, nil
}

// Pressed reports whether a key is currently held.
func (t *Terminal) Pressed(key uint32) bool {
	return t.hold.Pressed(key)
}

// Snapshot returns the keys held right now.
func (t *Terminal) Snapshot() input.KeySet {
	return t.hold.Snapshot()
}

// HandleEvent applies one screen event.
//
// Parameters:
//   - ev: the event
//
// Returns:
//   - bool: false when the event asks to quit
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if code, ok := KeyCode(ev); ok {
			t.hold.Press(code)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

// PollEvents feeds screen events to HandleEvent until the screen is finalized or a quit
// event arrives, in which case quit is called.
//
// Parameters:
//   - quit: called once when the user asks to quit
func (t *Terminal) PollEvents(quit func()) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		if !t.HandleEvent(ev) {
			t.logger.Info().Msg("quit requested")
			quit()
			return
		}
	}
}

// SetFrame records the latest session frame for the next Draw.
func (t *Terminal) SetFrame(f session.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frame = f
}

// Draw renders the map and readout for the latest frame and shows the screen.
func (t *Terminal) Draw() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
	w, h := t.screen.Size()
	mapRows := h - readoutRows
	if w > 0 && mapRows > 0 {
		t.drawMap(w, mapRows)
	}
	t.drawReadout(w, max(mapRows, 0))
	t.screen.Show()
}

// drawMap rasterizes grid lines and cuboids around the camera, then the camera arrow.
func (t *Terminal) drawMap(w, rows int) {
	state := t.frame.State
	p := t.projection(w, rows, state.Position)

	if cap(t.cells) < w*rows {
		t.cells = make([]rune, w*rows)
	}
	cells := t.cells[:w*rows]
	clear(cells)

	for _, l := range t.lines {
		half := l.Length / 2
		switch l.Axis {
		case grid.AxisX:
			col := p.column(l.Position.X())
			if col < 0 || col >= w {
				continue
			}
			for row := 0; row < rows; row++ {
				if z := p.worldZ(row); z >= l.Position.Z()-half && z <= l.Position.Z()+half {
					cells[row*w+col] = join(cells[row*w+col], '│')
				}
			}
		case grid.AxisZ:
			row := p.row(l.Position.Z())
			if row < 0 || row >= rows {
				continue
			}
			for col := 0; col < w; col++ {
				if x := p.worldX(col); x >= l.Position.X()-half && x <= l.Position.X()+half {
					cells[row*w+col] = join(cells[row*w+col], '─')
				}
			}
		}
	}

	for i, r := range cells {
		if r != 0 {
			t.screen.SetContent(i%w, i/w, r, nil, gridStyle)
		}
	}

	if t.world != nil {
		t.world.Each(func(_ ecs.Entity, o scene.Object) {
			if o.Geometry.Kind != scene.GeometryCuboid {
				return
			}
			col, row := p.column(o.Transform.Translation.X()), p.row(o.Transform.Translation.Z())
			if col < 0 || col >= w || row < 0 || row >= rows {
				return
			}
			c := o.Material.Colour
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			t.screen.SetContent(col, row, '■', nil, style)
		})
	}

	t.screen.SetContent(p.cx, p.cy, Heading(state), nil, cameraStyle)
}

// drawReadout writes the readout lines starting at row top.
func (t *Terminal) drawReadout(w, top int) {
	for i, line := range strings.SplitN(t.frame.Readout, "\n", readoutRows) {
		col := 0
		for _, r := range line {
			if col >= w {
				break
			}
			t.screen.SetContent(col, top+i, r, nil, readoutStyle)
			col++
		}
	}
}

// mapProjection maps world X/Z to screen cells with the camera at (cx, cy).
// Screen up is world -Z.
type mapProjection struct {
	cx, cy     int
	camX, camZ float32
	colScale   float32
	rowScale   float32
}

func (t *Terminal) projection(w, rows int, eye [3]float32) mapProjection {
	return mapProjection{
		cx:       w / 2,
		cy:       rows / 2,
		camX:     eye[0],
		camZ:     eye[2],
		colScale: t.scale,
		rowScale: 2 * t.scale,
	}
}

func (p mapProjection) column(x float32) int {
	return p.cx + int(math.Round(float64((x-p.camX)/p.colScale)))
}

func (p mapProjection) row(z float32) int {
	return p.cy + int(math.Round(float64((z-p.camZ)/p.rowScale)))
}

// worldX returns the world X at the centre of a column.
func (p mapProjection) worldX(col int) float32 {
	return p.camX + float32(col-p.cx)*p.colScale
}

func (p mapProjection) worldZ(row int) float32 {
	return p.camZ + float32(row-p.cy)*p.rowScale
}

// join merges a line glyph into a cell, producing a crossing where families meet.
func join(existing, r rune) rune {
	if existing == 0 || existing == r {
		return r
	}
	return '┼'
}

// Heading returns the arrow glyph for the camera's horizontal heading on the map.
//
// Parameters:
//   - s: the camera state
//
// Returns:
//   - rune: one of eight arrows, up meaning world -Z
func Heading(s camera.State) rune {
	f := s.Forward()
	// screen up is -Z and screen right is +X; angle is measured clockwise from up
	angle := math.Atan2(float64(f.X()), float64(-f.Z()))
	if math.Abs(float64(f.X())) < 1e-6 && math.Abs(float64(f.Z())) < 1e-6 {
		angle = 0
	}
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return arrows[idx]
}

// KeyCode maps a tcell key event to a key code from the common package.
//
// Parameters:
//   - ev: the key event
//
// Returns:
//   - uint32: the key code
//   - bool: false if the key has no code
func KeyCode(ev *tcell.EventKey) (uint32, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return common.KeyUp, true
	case tcell.KeyDown:
		return common.KeyDown, true
	case tcell.KeyLeft:
		return common.KeyLeft, true
	case tcell.KeyRight:
		return common.KeyRight, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r > unicode.MaxASCII {
			return 0, false
		}
		return common.ParseKey(string(r))
	}
	return 0, false
}
