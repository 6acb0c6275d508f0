// Package reporter formats the camera transform for display on a fixed cadence.
package reporter

import (
	"fmt"
	"math"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
)

// DefaultInterval is the readout refresh period.
const DefaultInterval = 100 * time.Millisecond

// Reporter is a repeating timer advanced by frame time. On each frame where the timer
// finishes it formats the camera state.
type Reporter struct {
	interval float32
	elapsed  float32
	text     string
}

// New creates a Reporter.
//
// Parameters:
//   - interval: the refresh period; zero or negative selects DefaultInterval
//
// Returns:
//   - *Reporter: the reporter
func New(interval time.Duration) *Reporter {
	interval = common.PositiveOr(interval, DefaultInterval)
	return &Reporter{interval: float32(interval.Seconds())}
}

// Tick advances the timer by dt and, when it finishes, formats the state.
// A single long frame finishes the timer once; the overshoot modulo the period carries
// into the next one.
//
// Parameters:
//   - dt: elapsed seconds since the previous frame
//   - state: the camera state to report
//
// Returns:
//   - string: the formatted readout when the timer finished, otherwise the previous readout
//   - bool: true when the timer finished on this frame
func (r *Reporter) Tick(dt float32, state camera.State) (string, bool) {
	r.elapsed += max(dt, 0)
	if r.elapsed < r.interval {
		return r.text, false
	}
	r.elapsed = float32(math.Mod(float64(r.elapsed), float64(r.interval)))
	r.text = Format(state)
	return r.text, true
}

// Text returns the most recent readout, or "" before the first report.
func (r *Reporter) Text() string {
	return r.text
}

// Format renders a camera state with two decimals for each component.
//
// Parameters:
//   - s: the camera state
//
// Returns:
//   - string: "Position: x=.., y=.., z=..\n Rotation: yaw=.., pitch=.., roll=.."
func Format(s camera.State) string {
	return fmt.Sprintf("Position: x=%.2f, y=%.2f, z=%.2f\n Rotation: yaw=%.2f, pitch=%.2f, roll=%.2f",
		s.Position.X(), s.Position.Y(), s.Position.Z(),
		s.Yaw, s.Pitch, s.Roll,
	)
}
