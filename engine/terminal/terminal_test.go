package terminal

import (
	"math"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/reporter"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/Carmen-Shannon/oxy-flycam/engine/session"
	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func cellAt(screen tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := screen.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(screen tcell.SimulationScreen, y int) string {
	_, w, _ := screen.GetContents()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		out = append(out, cellAt(screen, x, y))
	}
	return string(out)
}

func TestNew_RejectsInvalidGrid(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	_, err := New(screen, grid.Grid{SizeX: 10, SizeY: 10, IntervalX: 0, IntervalY: 1})
	require.ErrorIs(t, err, grid.ErrInvalidInterval)
}

func TestDraw_MapAndReadout(t *testing.T) {
	screen := newSimScreen(t, 40, 12)

	layout, err := scene.Build(grid.Default(), scene.DefaultOptions())
	require.NoError(t, err)
	world := scene.NewWorld()
	world.Spawn(layout)

	term, err := New(screen, grid.Default(), WithWorld(world))
	require.NoError(t, err)

	state := camera.State{Position: mgl32.Vec3{0, 20, 8}}
	term.SetFrame(session.Frame{State: state, Readout: reporter.Format(state)})
	term.Draw()

	// 10 map rows: camera at column 20, row 5; 2 units per column, 4 per row
	assert.Equal(t, '↑', cellAt(screen, 20, 5))
	assert.Equal(t, '■', cellAt(screen, 20, 3), "landmark at the origin")
	assert.Equal(t, '─', cellAt(screen, 22, 3), "z=0 line")
	assert.Equal(t, '┼', cellAt(screen, 25, 3), "x=10 crosses z=0")
	assert.Equal(t, '│', cellAt(screen, 25, 4), "x=10 line")
	assert.Equal(t, ' ', cellAt(screen, 22, 4))

	assert.Contains(t, rowText(screen, 10), "Position: x=0.00, y=20.00, z=8.00")
	assert.Contains(t, rowText(screen, 11), " Rotation: yaw=0.00")
}

func TestDraw_TinyScreen(t *testing.T) {
	screen := newSimScreen(t, 5, 1)
	term, err := New(screen, grid.Default())
	require.NoError(t, err)

	term.SetFrame(session.Frame{Readout: "Position\n Rotation"})
	require.NotPanics(t, term.Draw)
}

func TestHandleEvent_Keys(t *testing.T) {
	screen := newSimScreen(t, 40, 12)
	term, err := New(screen, grid.Default())
	require.NoError(t, err)

	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)))
	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	assert.True(t, term.Pressed(common.KeyW))
	assert.True(t, term.Pressed(common.KeyLeft))
	assert.False(t, term.Pressed(common.KeyS))

	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestHandleEvent_HoldExpires(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	screen := newSimScreen(t, 40, 12)
	term, err := New(screen, grid.Default(), WithHoldState(input.NewHoldState(100*time.Millisecond, clock)))
	require.NoError(t, err)

	term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'D', tcell.ModNone))
	assert.True(t, term.Pressed(common.KeyD))

	now = now.Add(150 * time.Millisecond)
	assert.False(t, term.Pressed(common.KeyD))
}

func TestKeyCode(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want uint32
		ok   bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), common.KeyUp, true},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), common.KeyRight, true},
		{"lower letter", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), common.KeyJ, true},
		{"upper letter", tcell.NewEventKey(tcell.KeyRune, 'A', tcell.ModNone), common.KeyA, true},
		{"non ascii", tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), 0, false},
		{"punctuation", tcell.NewEventKey(tcell.KeyRune, '/', tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := KeyCode(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHeading(t *testing.T) {
	tests := []struct {
		yaw  float32
		want rune
	}{
		{0, '↑'},
		{math.Pi / 2, '←'},
		{-math.Pi / 2, '→'},
		{math.Pi / 4, '↖'},
		{-3 * math.Pi / 4, '↘'},
		{-math.Pi, '↓'},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Heading(camera.State{Yaw: tt.yaw}), "yaw %v", tt.yaw)
	}
}
