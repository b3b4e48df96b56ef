package raster

import (
	"softrender/internal/framebuf"
	"softrender/internal/linalg"
)

// Vec3 is the float vector used for depth, intensity and barycentric weights.
type Vec3 = linalg.Vec3[float32]

// Triangle2D is one screen-space primitive ready for rasterization.
// Component i of Depth, row i of UV and component i of Intensity all belong
// to vertex i of (A, B, C). No winding order is implied.
type Triangle2D struct {
	A, B, C   Point
	Depth     Vec3
	UV        linalg.Mat3x2[float32]
	Intensity Vec3
}

// Stats counts the work done by one or more rasterization calls.
type Stats struct {
	Tested  int // pixels visited inside the clamped bounding box
	Inside  int // pixels inside the triangle
	Written int // pixels that passed the depth test and were drawn
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Tested += o.Tested
	s.Inside += o.Inside
	s.Written += o.Written
}

// DepthRejected is the number of covered pixels hidden by nearer samples.
func (s Stats) DepthRejected() int { return s.Inside - s.Written }

// degenerate is returned for zero-area triangles; it fails the inside test
// for every pixel.
var degenerate = Vec3{-1, 1, 1}

// Barycentric returns the weights of p with respect to triangle (a, b, c).
// The vectors (AB.x, AC.x, PA.x) and (AB.y, AC.y, PA.y) are crossed; with
// u = cross.x/cross.z and v = cross.y/cross.z the result is (1−u−v, u, v).
// A zero-area triangle yields (−1, 1, 1).
func Barycentric(a, b, c, p Point) Vec3 {
	ab := linalg.Vec2Of[float32](b.Sub(a))
	ac := linalg.Vec2Of[float32](c.Sub(a))
	pa := linalg.Vec2Of[float32](a.Sub(p))

	s := Vec3{ab[0], ac[0], pa[0]}
	t := Vec3{ab[1], ac[1], pa[1]}
	cr := s.Cross(t)
	if cr[2] == 0 {
		return degenerate
	}
	u := cr[0] / cr[2]
	v := cr[1] / cr[2]
	return Vec3{1 - u - v, u, v}
}

// Fragment returns the color of a covered pixel from its barycentric weights.
type Fragment func(bary Vec3) Color

// SolidColor shades every pixel with c.
func SolidColor(c Color) Fragment {
	return func(Vec3) Color { return c }
}

// VertexColors blends three per-vertex colors channel by channel.
// Each channel is the weighted float sum truncated to 8 bits.
func VertexColors(c0, c1, c2 Color) Fragment {
	r := Vec3{float32(c0.R), float32(c1.R), float32(c2.R)}
	g := Vec3{float32(c0.G), float32(c1.G), float32(c2.G)}
	b := Vec3{float32(c0.B), float32(c1.B), float32(c2.B)}
	return func(bary Vec3) Color {
		return Color{
			R: framebuf.Truncate8(r.Dot(bary)),
			G: framebuf.Truncate8(g.Dot(bary)),
			B: framebuf.Truncate8(b.Dot(bary)),
		}
	}
}

// Textured interpolates the triangle's UVs, samples s and scales the result
// by the interpolated lighting intensity.
func Textured(tri *Triangle2D, s Sampler) Fragment {
	uvT := tri.UV.Transpose()
	intensity := tri.Intensity
	return func(bary Vec3) Color {
		uv := uvT.MulVec(bary)
		return s.Sample(uv).Scale(intensity.Dot(bary))
	}
}

// Lit scales a fragment by the triangle's interpolated lighting intensity.
func Lit(tri *Triangle2D, f Fragment) Fragment {
	intensity := tri.Intensity
	return func(bary Vec3) Color {
		return f(bary).Scale(intensity.Dot(bary))
	}
}

// DrawTriangle rasterizes tri with depth testing and attribute
// interpolation. The bounding box is clamped to the target. A pixel is
// covered when no barycentric weight is negative; its depth is
// Depth·bary and it is drawn only when strictly greater than the value
// in zbuf, which is then updated. Equal depths keep the earlier pixel.
func DrawTriangle(dt DrawTarget, zbuf *framebuf.DepthBuffer, tri *Triangle2D, frag Fragment) Stats {
	var st Stats
	minX, minY, maxX, maxY, ok := bbox(dt, tri.A, tri.B, tri.C)
	if !ok {
		return st
	}

	var p Point
	for p[1] = minY; p[1] <= maxY; p[1]++ {
		for p[0] = minX; p[0] <= maxX; p[0]++ {
			st.Tested++
			bary := Barycentric(tri.A, tri.B, tri.C, p)
			if bary[0] < 0 || bary[1] < 0 || bary[2] < 0 {
				continue
			}
			st.Inside++
			z := tri.Depth.Dot(bary)
			// Written this way so NaN depths never pass.
			if !(z > zbuf.Get(p[0], p[1])) {
				continue
			}
			zbuf.Set(p[0], p[1], z)
			dt.Draw(p[0], p[1], frag(bary))
			st.Written++
		}
	}
	return st
}
