package renderer

import (
	"encoding/binary"
	"math"

	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

// circleSegments is the number of rim segments in the unit disc.
const circleSegments = 48

// vertexStride is the byte size of one Vertex: position + normal.
const vertexStride = 24

// Vertex is a mesh vertex with a position and a normal.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// VertexBytes serializes the vertices for upload.
func (m Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*vertexStride)
	for i, v := range m.Vertices {
		off := i * vertexStride
		putVec3(buf[off:], v.Position)
		putVec3(buf[off+12:], v.Normal)
	}
	return buf
}

// IndexBytes serializes the indices as little-endian uint32s.
func (m Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// UnitMesh returns the unit mesh for a geometry kind. Scene geometry is produced by
// scaling it with scene.ModelMatrix.
//
// Parameters:
//   - kind: the geometry kind
//
// Returns:
//   - Mesh: the unit mesh, or an empty mesh for an unknown kind
func UnitMesh(kind scene.GeometryKind) Mesh {
	switch kind {
	case scene.GeometryRectangle:
		return unitRectangle()
	case scene.GeometryCircle:
		return unitCircle(circleSegments)
	case scene.GeometryCuboid:
		return unitCuboid()
	default:
		return Mesh{}
	}
}

// unitRectangle is a 1x1 quad in the XY plane facing +Z.
func unitRectangle() Mesh {
	n := mgl32.Vec3{0, 0, 1}
	return Mesh{
		Vertices: []Vertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0}, Normal: n},
			{Position: mgl32.Vec3{0.5, -0.5, 0}, Normal: n},
			{Position: mgl32.Vec3{0.5, 0.5, 0}, Normal: n},
			{Position: mgl32.Vec3{-0.5, 0.5, 0}, Normal: n},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

// unitCircle is a triangle fan of unit diameter in the XY plane facing +Z.
func unitCircle(segments int) Mesh {
	n := mgl32.Vec3{0, 0, 1}
	m := Mesh{
		Vertices: make([]Vertex, 0, segments+1),
		Indices:  make([]uint32, 0, segments*3),
	}
	m.Vertices = append(m.Vertices, Vertex{Normal: n})
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		m.Vertices = append(m.Vertices, Vertex{
			Position: mgl32.Vec3{0.5 * float32(math.Cos(a)), 0.5 * float32(math.Sin(a)), 0},
			Normal:   n,
		})
	}
	for i := 0; i < segments; i++ {
		next := (i+1)%segments + 1
		m.Indices = append(m.Indices, 0, uint32(i+1), uint32(next))
	}
	return m
}

// cuboidFaces lists each face's normal and the two in-plane axes whose cross product is the normal.
var cuboidFaces = [6][3]mgl32.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// unitCuboid is a unit cube centred on the origin with per-face normals.
func unitCuboid() Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	corners := [4][2]float32{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}
	for _, face := range cuboidFaces {
		normal, u, v := face[0], face[1], face[2]
		base := uint32(len(m.Vertices))
		for _, c := range corners {
			p := normal.Mul(0.5).Add(u.Mul(c[0])).Add(v.Mul(c[1]))
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: normal})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

func putVec3(buf []byte, v mgl32.Vec3) {
	for i, c := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(c))
	}
}
