// Package scene describes the startup scene as plain descriptors and stores them
// in an ECS world that the render and terminal adapters read from.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// GeometryKind selects one of the unit meshes a renderer provides.
type GeometryKind uint8

const (
	// GeometryRectangle is a unit quad in the XY plane facing +Z.
	GeometryRectangle GeometryKind = iota
	// GeometryCircle is a unit-diameter disc in the XY plane facing +Z.
	GeometryCircle
	// GeometryCuboid is a unit cube centred on the origin.
	GeometryCuboid

	geometryKindCount
)

// GeometryKinds returns every geometry kind in declaration order.
func GeometryKinds() []GeometryKind {
	return []GeometryKind{GeometryRectangle, GeometryCircle, GeometryCuboid}
}

func (k GeometryKind) String() string {
	switch k {
	case GeometryRectangle:
		return "rectangle"
	case GeometryCircle:
		return "circle"
	case GeometryCuboid:
		return "cuboid"
	default:
		return "unknown"
	}
}

// Geometry is a shape request: a kind plus its dimensions in world units.
type Geometry struct {
	Kind   GeometryKind
	Width  float32
	Height float32
	Depth  float32
	Radius float32
}

// Rectangle returns a w x h rectangle.
func Rectangle(w, h float32) Geometry {
	return Geometry{Kind: GeometryRectangle, Width: w, Height: h}
}

// Circle returns a disc of radius r.
func Circle(r float32) Geometry {
	return Geometry{Kind: GeometryCircle, Radius: r}
}

// Cuboid returns a w x h x d box.
func Cuboid(w, h, d float32) Geometry {
	return Geometry{Kind: GeometryCuboid, Width: w, Height: h, Depth: d}
}

// Extents returns the scale that maps the kind's unit mesh to this geometry.
// Flat shapes keep a unit Z scale.
//
// Returns:
//   - mgl32.Vec3: per-axis scale
func (g Geometry) Extents() mgl32.Vec3 {
	switch g.Kind {
	case GeometryCircle:
		return mgl32.Vec3{2 * g.Radius, 2 * g.Radius, 1}
	case GeometryCuboid:
		return mgl32.Vec3{g.Width, g.Height, g.Depth}
	default:
		return mgl32.Vec3{g.Width, g.Height, 1}
	}
}

// Material is a solid colour.
type Material struct {
	Colour color.RGBA
}

// Vec4 returns the colour as normalized RGBA floats.
func (m Material) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{
		float32(m.Colour.R) / 255,
		float32(m.Colour.G) / 255,
		float32(m.Colour.B) / 255,
		float32(m.Colour.A) / 255,
	}
}

// Transform places an object: scale, then rotate, then translate.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// At returns an unrotated, unscaled transform at a position.
func At(x, y, z float32) Transform {
	return Transform{
		Translation: mgl32.Vec3{x, y, z},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	}
}

// Matrix returns translation * rotation * scale.
func (t Transform) Matrix() mgl32.Mat4 {
	return mgl32.Translate3D(t.Translation.Elem()).
		Mul4(t.Rotation.Mat4()).
		Mul4(mgl32.Scale3D(t.Scale.Elem()))
}

// Name labels an entity for logs and lookups.
type Name struct {
	Value string
}

// Object is a renderable scene descriptor.
type Object struct {
	Name      string
	Geometry  Geometry
	Material  Material
	Transform Transform
	// Landmark marks the object whose material the proximity check recolours.
	Landmark bool
}

// ModelMatrix combines the transform with the geometry's extents.
//
// Returns:
//   - mgl32.Mat4: the matrix mapping the unit mesh into world space
func (o Object) ModelMatrix() mgl32.Mat4 {
	return ModelMatrix(o.Geometry, o.Transform)
}

// ModelMatrix maps the unit mesh for g into world space under t.
func ModelMatrix(g Geometry, t Transform) mgl32.Mat4 {
	return t.Matrix().Mul4(mgl32.Scale3D(g.Extents().Elem()))
}

// BoundingRadius returns the radius of a sphere around the object's centre that
// encloses its geometry under the transform's scale.
func BoundingRadius(g Geometry, t Transform) float32 {
	e := g.Extents()
	s := t.Scale
	half := mgl32.Vec3{e[0] * s[0], e[1] * s[1], e[2] * s[2]}.Mul(0.5)
	return half.Len()
}

// Light is a point light.
type Light struct {
	Position  mgl32.Vec3
	Intensity float32
	Range     float32
	Radius    float32
	Shadows   bool
}

// CameraStart is the camera's initial pose.
type CameraStart struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// Layout is everything the startup routine asks the host to create.
type Layout struct {
	Objects []Object
	Lights  []Light
	Camera  CameraStart
}

// Landmark returns the object flagged as the landmark.
func (l Layout) Landmark() (Object, bool) {
	for _, o := range l.Objects {
		if o.Landmark {
			return o, true
		}
	}
	return Object{}, false
}
