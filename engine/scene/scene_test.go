package scene

import (
	"image/color"
	"testing"

	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mlange-42/ark/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultLayout(t *testing.T, opts Options) Layout {
	t.Helper()
	layout, err := Build(grid.Default(), opts)
	require.NoError(t, err)
	return layout
}

func TestBuild_DefaultScene(t *testing.T) {
	layout := defaultLayout(t, DefaultOptions())

	// 11 X-family lines, 101 Z-family lines, then the landmark
	require.Len(t, layout.Objects, 11+101+1)

	first := layout.Objects[0]
	assert.Equal(t, GeometryRectangle, first.Geometry.Kind)
	assert.Equal(t, float32(1), first.Geometry.Width)
	assert.Equal(t, float32(1001), first.Geometry.Height)
	assert.Equal(t, Black, first.Material.Colour)

	landmark, ok := layout.Landmark()
	require.True(t, ok)
	assert.Equal(t, Cuboid(1, 20, 1), landmark.Geometry)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, landmark.Transform.Translation)
	assert.Equal(t, Blue, landmark.Material.Colour)

	require.Len(t, layout.Lights, 1)
	assert.Equal(t, mgl32.Vec3{0, 1, 0}, layout.Lights[0].Position)
	assert.Equal(t, float32(1000), layout.Lights[0].Range)
	assert.Equal(t, float32(10), layout.Lights[0].Radius)

	assert.Equal(t, mgl32.Vec3{0, 20, 40}, layout.Camera.Position)
}

func TestBuild_Ground(t *testing.T) {
	opts := DefaultOptions()
	opts.Ground = true
	layout := defaultLayout(t, opts)

	ground := layout.Objects[len(layout.Objects)-2]
	assert.Equal(t, "ground", ground.Name)
	assert.Equal(t, GeometryCircle, ground.Geometry.Kind)
	assert.Less(t, ground.Transform.Translation.Y(), float32(0))
}

func TestBuild_RejectsInvalidGrid(t *testing.T) {
	_, err := Build(grid.Grid{SizeX: 10, SizeY: 10, IntervalX: 0, IntervalY: 1}, DefaultOptions())
	assert.ErrorIs(t, err, grid.ErrInvalidInterval)
}

func TestModelMatrix_LineLiesOnGround(t *testing.T) {
	layout := defaultLayout(t, DefaultOptions())
	line := layout.Objects[0]

	// the unit quad's top edge midpoint (0, 0.5, 0) lands half a line length down -Z
	m := line.ModelMatrix()
	top := m.Mul4x1(mgl32.Vec4{0, 0.5, 0, 1})
	assert.InDelta(t, line.Transform.Translation.X(), top.X(), 1e-3)
	assert.InDelta(t, 0, top.Y(), 1e-3)
	assert.InDelta(t, -500.5, top.Z(), 1e-3)
}

func TestGeometry_Extents(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{3, 4, 1}, Rectangle(3, 4).Extents())
	assert.Equal(t, mgl32.Vec3{10, 10, 1}, Circle(5).Extents())
	assert.Equal(t, mgl32.Vec3{1, 20, 1}, Cuboid(1, 20, 1).Extents())
}

func TestBoundingRadius(t *testing.T) {
	r := BoundingRadius(Cuboid(2, 2, 2), At(0, 0, 0))
	assert.InDelta(t, 1.7320508, r, 1e-5)
}

func TestMaterial_Vec4(t *testing.T) {
	assert.Equal(t, mgl32.Vec4{1, 0, 0, 1}, Material{Colour: color.RGBA{R: 255, A: 255}}.Vec4())
}

func TestWorld_SpawnAndEach(t *testing.T) {
	layout := defaultLayout(t, DefaultOptions())
	w := NewWorld()
	entities := w.Spawn(layout)

	assert.Len(t, entities, len(layout.Objects))
	assert.Equal(t, len(layout.Objects), w.Count())
	assert.Len(t, w.Lights(), 1)

	seen := 0
	landmarks := 0
	w.Each(func(_ ecs.Entity, o Object) {
		seen++
		if o.Landmark {
			landmarks++
			assert.Equal(t, "landmark", o.Name)
		}
	})
	assert.Equal(t, len(layout.Objects), seen)
	assert.Equal(t, 1, landmarks)
}

func TestWorld_SetLandmarkColour(t *testing.T) {
	w := NewWorld()
	assert.False(t, w.SetLandmarkColour(color.RGBA{R: 255, A: 255}))

	w.Spawn(defaultLayout(t, DefaultOptions()))
	e, ok := w.Landmark()
	require.True(t, ok)

	red := color.RGBA{R: 255, A: 255}
	assert.True(t, w.SetLandmarkColour(red))
	assert.False(t, w.SetLandmarkColour(red))

	got, ok := w.Colour(e)
	require.True(t, ok)
	assert.Equal(t, red, got)
}
