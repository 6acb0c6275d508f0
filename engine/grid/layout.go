package grid

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LineWidth is the thickness of every grid line in world units.
const LineWidth float32 = 1

// linePadding is added to each line's length so lines overlap at the outer intersections.
const linePadding float32 = 1

// Axis identifies the family a grid line belongs to, i.e. the world axis its offsets step along.
type Axis int

const (
	// AxisX lines sit at X offsets and run along Z.
	AxisX Axis = iota
	// AxisZ lines sit at Z offsets and run along X.
	AxisZ
)

func (a Axis) String() string {
	if a == AxisZ {
		return "z"
	}
	return "x"
}

// LineSpec describes the placement of one grid line: a flat rectangle on the ground plane.
type LineSpec struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Length      float32
	Width       float32
	Axis        Axis
}

// Size returns the rectangle extents (local width, local height) before Orientation is applied.
// The ground-plane rotation maps local height onto world -Z.
//
// Returns:
//   - w, h: rectangle width and height
func (l LineSpec) Size() (w, h float32) {
	if l.Axis == AxisX {
		return l.Width, l.Length
	}
	return l.Length, l.Width
}

// groundRotation lays a rectangle from the XY plane flat onto the XZ ground plane.
var groundRotation = mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0})

// Generate produces the grid-line placements for the given configuration.
// It validates first, so a non-positive or fractional interval is reported instead of
// producing zero or endless lines.
//
// Parameters:
//   - sizeX, sizeY: extents along world X and Z
//   - intervalX, intervalY: line spacing for each family
//
// Returns:
//   - []LineSpec: X-axis lines followed by Z-axis lines, each in ascending offset order
//   - error: a validation error from Grid.Validate
func Generate(sizeX, sizeY, intervalX, intervalY float32) ([]LineSpec, error) {
	return Grid{SizeX: sizeX, SizeY: sizeY, IntervalX: intervalX, IntervalY: intervalY}.Lines()
}

// Lines produces the grid-line placements for g. Output depends only on g.
//
// Returns:
//   - []LineSpec: X-axis lines followed by Z-axis lines, each in ascending offset order
//   - error: a validation error from Grid.Validate
func (g Grid) Lines() ([]LineSpec, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	xs := offsets(g.SizeX, g.IntervalX)
	zs := offsets(g.SizeY, g.IntervalY)
	lines := make([]LineSpec, 0, len(xs)+len(zs))

	for _, i := range xs {
		lines = append(lines, LineSpec{
			Position:    mgl32.Vec3{float32(i), 0, 0},
			Orientation: groundRotation,
			Length:      g.SizeY + linePadding,
			Width:       LineWidth,
			Axis:        AxisX,
		})
	}
	for _, j := range zs {
		lines = append(lines, LineSpec{
			Position:    mgl32.Vec3{0, 0, float32(j)},
			Orientation: groundRotation,
			Length:      g.SizeX + linePadding,
			Width:       LineWidth,
			Axis:        AxisZ,
		})
	}
	return lines, nil
}

// offsets returns the integer offsets from ceil(-size/2) to floor(size/2) inclusive, stepping by interval.
func offsets(size, interval float32) []int {
	lo := int(math.Ceil(float64(-size / 2)))
	hi := int(math.Floor(float64(size / 2)))
	stride := int(interval)
	if hi < lo {
		return nil
	}
	out := make([]int, 0, (hi-lo)/stride+1)
	for i := lo; i <= hi; i += stride {
		out = append(out, i)
	}
	return out
}
