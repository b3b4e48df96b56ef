// Package mesh supplies triangle geometry to the renderer. Provider is the
// read-only view the pipeline consumes; Model is the in-memory
// implementation produced by the OBJ loader.
package mesh

import "softrender/internal/linalg"

type (
	Vec2 = linalg.Vec2[float32]
	Vec3 = linalg.Vec3[float32]
)

// Corner indexes one face corner into the vertex, UV and normal arrays.
// UV and N are -1 when the source did not provide them.
type Corner struct {
	V, UV, N int
}

// Face is a triangle plus the index of its material (-1 when none).
type Face struct {
	Corners  [3]Corner
	Material int
}

// Provider exposes mesh data by 0-based index. Indices are trusted: an
// out-of-range index panics inside the provider.
type Provider interface {
	VertexCount() int
	FaceCount() int
	Vertex(i int) Vec3
	Normal(i int) Vec3
	UV(i int) Vec2
	Face(i int) Face
}

// Model is a Provider backed by plain slices.
type Model struct {
	Vertices  []Vec3
	Normals   []Vec3
	UVs       []Vec2
	Faces     []Face
	Materials []string
}

func (m *Model) VertexCount() int  { return len(m.Vertices) }
func (m *Model) FaceCount() int    { return len(m.Faces) }
func (m *Model) Vertex(i int) Vec3 { return m.Vertices[i] }
func (m *Model) Normal(i int) Vec3 { return m.Normals[i] }
func (m *Model) UV(i int) Vec2     { return m.UVs[i] }
func (m *Model) Face(i int) Face   { return m.Faces[i] }

// Material returns the name of material id, or "" when id is -1.
func (m *Model) Material(id int) string {
	if id < 0 || id >= len(m.Materials) {
		return ""
	}
	return m.Materials[id]
}

// Bounds returns the axis-aligned box enclosing every vertex of p.
func Bounds(p Provider) (lo, hi Vec3) {
	n := p.VertexCount()
	if n == 0 {
		return lo, hi
	}
	lo, hi = p.Vertex(0), p.Vertex(0)
	for i := 1; i < n; i++ {
		v := p.Vertex(i)
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], v[k])
			hi[k] = max(hi[k], v[k])
		}
	}
	return lo, hi
}
