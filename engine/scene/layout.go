package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
)

// groundOffset drops the ground disc just below the grid lines so the two never z-fight.
const groundOffset float32 = -0.01

var (
	// Black is the grid line colour.
	Black = color.RGBA{A: 255}
	// Grey is the optional ground colour.
	Grey = color.RGBA{R: 96, G: 96, B: 96, A: 255}
	// Blue is the landmark's starting colour.
	Blue = color.RGBA{B: 255, A: 255}
)

// Options controls what Build emits beyond the grid lines.
type Options struct {
	// Ground adds a disc of GroundRadius under the grid.
	Ground       bool
	GroundRadius float32
	GroundColour color.RGBA

	LineColour color.RGBA

	// LandmarkPosition is the centre of the landmark cuboid.
	LandmarkPosition mgl32.Vec3
	LandmarkSize     mgl32.Vec3
	LandmarkColour   color.RGBA

	Light  Light
	Camera CameraStart
}

// DefaultOptions reproduces the stock scene: a 1 x 20 x 1 blue cuboid standing at
// (0, 10, 0), a point light at (0, 1, 0) with range 1000 and radius 10, and the camera at
// (0, 20, 40) looking at the origin. The ground disc is off.
func DefaultOptions() Options {
	return Options{
		GroundRadius:     4,
		GroundColour:     Grey,
		LineColour:       Black,
		LandmarkPosition: mgl32.Vec3{0, 10, 0},
		LandmarkSize:     mgl32.Vec3{1, 20, 1},
		LandmarkColour:   Blue,
		Light: Light{
			Position:  mgl32.Vec3{0, 1, 0},
			Intensity: math.MaxFloat32,
			Range:     1000,
			Radius:    10,
			Shadows:   true,
		},
		Camera: CameraStart{
			Position: mgl32.Vec3{0, 20, 40},
			LookAt:   mgl32.Vec3{0, 0, 0},
		},
	}
}

// Build produces the startup layout for a grid: one black rectangle per grid line in
// generator order, then the optional ground disc, then the landmark.
//
// Parameters:
//   - g: the world grid
//   - opts: scene options
//
// Returns:
//   - Layout: the descriptors to spawn
//   - error: the grid's validation error, if any
func Build(g grid.Grid, opts Options) (Layout, error) {
	lines, err := g.Lines()
	if err != nil {
		return Layout{}, fmt.Errorf("failed to lay out grid: %w", err)
	}

	objects := make([]Object, 0, len(lines)+2)
	for i, l := range lines {
		w, h := l.Size()
		objects = append(objects, Object{
			Name:     fmt.Sprintf("grid-%s-%d", l.Axis, i),
			Geometry: Rectangle(w, h),
			Material: Material{Colour: opts.LineColour},
			Transform: Transform{
				Translation: l.Position,
				Rotation:    l.Orientation,
				Scale:       mgl32.Vec3{1, 1, 1},
			},
		})
	}

	if opts.Ground {
		ground := At(0, groundOffset, 0)
		ground.Rotation = mgl32.QuatRotate(-math.Pi/2, mgl32.Vec3{1, 0, 0})
		objects = append(objects, Object{
			Name:      "ground",
			Geometry:  Circle(opts.GroundRadius),
			Material:  Material{Colour: opts.GroundColour},
			Transform: ground,
		})
	}

	size := opts.LandmarkSize
	objects = append(objects, Object{
		Name:      "landmark",
		Geometry:  Cuboid(size.X(), size.Y(), size.Z()),
		Material:  Material{Colour: opts.LandmarkColour},
		Transform: At(opts.LandmarkPosition.Elem()),
		Landmark:  true,
	})

	return Layout{
		Objects: objects,
		Lights:  []Light{opts.Light},
		Camera:  opts.Camera,
	}, nil
}
