// Package proximity picks the landmark colour from the camera's distance to it.
package proximity

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// Blue is the landmark colour while the camera is away.
	Blue = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	// Red is the landmark colour while the camera is within range.
	Red = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// DefaultRadius is the distance below which the landmark is highlighted.
const DefaultRadius float32 = 30

// Highlighter compares a position to a fixed landmark point.
type Highlighter struct {
	Landmark    mgl32.Vec3
	Radius      float32
	Normal      color.RGBA
	Highlighted color.RGBA
}

// NewHighlighter returns a Highlighter for a landmark with the default radius and colours.
func NewHighlighter(landmark mgl32.Vec3) Highlighter {
	return Highlighter{
		Landmark:    landmark,
		Radius:      DefaultRadius,
		Normal:      Blue,
		Highlighted: Red,
	}
}

// InRange reports whether position is strictly closer than Radius to the landmark.
func (h Highlighter) InRange(position mgl32.Vec3) bool {
	return position.Sub(h.Landmark).Len() < h.Radius
}

// Colour returns Highlighted when position is in range, otherwise Normal.
//
// Parameters:
//   - position: the camera position
//
// Returns:
//   - color.RGBA: the landmark colour for this frame
func (h Highlighter) Colour(position mgl32.Vec3) color.RGBA {
	if h.InRange(position) {
		return h.Highlighted
	}
	return h.Normal
}
