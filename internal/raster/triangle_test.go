package raster

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"softrender/internal/framebuf"
	"softrender/internal/linalg"
)

func approx(a, b float32) bool { return scalar.EqualWithinAbs(float64(a), float64(b), 1e-5) }

func TestBarycentricAtVertices(t *testing.T) {
	tris := [][3]Point{
		{pt(0, 0), pt(10, 0), pt(5, 10)},
		{pt(3, 7), pt(-4, 2), pt(12, -6)},
		{pt(100, 100), pt(101, 300), pt(40, 250)},
	}
	for _, tr := range tris {
		a, b, c := tr[0], tr[1], tr[2]
		for i, p := range tr {
			got := Barycentric(a, b, c, p)
			var want Vec3
			want[i] = 1
			for k := range got {
				if !approx(got[k], want[k]) {
					t.Errorf("Barycentric(%v) at vertex %d = %v, want %v", tr, i, got, want)
					break
				}
			}
		}
	}
}

func TestBarycentricInterior(t *testing.T) {
	a, b, c := pt(0, 0), pt(20, 0), pt(0, 20)
	for _, p := range []Point{{1, 1}, {5, 5}, {9, 9}, {10, 2}, {2, 15}} {
		got := Barycentric(a, b, c, p)
		for k, w := range got {
			if w <= 0 {
				t.Errorf("p=%v weight %d = %v, want > 0", p, k, w)
			}
		}
		if sum := got[0] + got[1] + got[2]; !approx(sum, 1) {
			t.Errorf("p=%v weights sum to %v", p, sum)
		}
	}

	outside := Barycentric(a, b, c, pt(15, 15))
	if outside[0] >= 0 {
		t.Errorf("point beyond hypotenuse got %v, want a negative weight", outside)
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	got := Barycentric(pt(0, 0), pt(0, 0), pt(5, 5), pt(1, 1))
	if got != (Vec3{-1, 1, 1}) {
		t.Errorf("degenerate = %v, want (-1,1,1)", got)
	}
	got = Barycentric(pt(0, 0), pt(2, 2), pt(4, 4), pt(1, 1))
	if got != (Vec3{-1, 1, 1}) {
		t.Errorf("collinear = %v, want (-1,1,1)", got)
	}
}

func TestFillTriangleClosed(t *testing.T) {
	r := newRecorder(10, 10)
	st := FillTriangle(r, pt(0, 0), pt(4, 0), pt(0, 4), framebuf.White)
	// 5+4+3+2+1 pixels including both legs and the hypotenuse.
	if len(r.pts) != 15 || st.Written != 15 {
		t.Errorf("filled %d pixels (stats %+v), want 15", len(r.pts), st)
	}
	if st.Tested != 25 {
		t.Errorf("tested %d pixels, want 25", st.Tested)
	}

	// Winding must not matter.
	r2 := newRecorder(10, 10)
	FillTriangle(r2, pt(0, 0), pt(0, 4), pt(4, 0), framebuf.White)
	if len(r2.pts) != 15 {
		t.Errorf("reversed winding filled %d pixels, want 15", len(r2.pts))
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	r := newRecorder(10, 10)
	FillTriangle(r, pt(1, 1), pt(1, 1), pt(6, 3), framebuf.White)
	FillTriangle(r, pt(0, 0), pt(3, 3), pt(6, 6), framebuf.White)
	if len(r.pts) != 0 {
		t.Errorf("zero-area triangles drew %v", r.pts)
	}
}

func TestFillTriangleOffscreen(t *testing.T) {
	r := newRecorder(10, 10)
	st := FillTriangle(r, pt(-20, -20), pt(-10, -20), pt(-15, -5), framebuf.White)
	if st.Tested != 0 || len(r.pts) != 0 {
		t.Errorf("offscreen triangle tested %d pixels", st.Tested)
	}

	st = FillTriangle(r, pt(-5, -5), pt(30, -5), pt(-5, 30), framebuf.White)
	if st.Tested != 100 {
		t.Errorf("bbox not clamped: tested %d, want 100", st.Tested)
	}
}

func flatTriangle(a, b, c Point, depth float32) *Triangle2D {
	return &Triangle2D{A: a, B: b, C: c, Depth: Vec3{depth, depth, depth}, Intensity: Vec3{1, 1, 1}}
}

func TestDrawTriangleScenario(t *testing.T) {
	cb := framebuf.NewColor(20, 20)
	zbuf := framebuf.NewDepth(20, 20)
	tri := flatTriangle(pt(0, 0), pt(10, 0), pt(5, 10), 1)

	st := DrawTriangle(cb, zbuf, tri, SolidColor(framebuf.White))
	if st.Written == 0 {
		t.Fatal("nothing drawn")
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			p := pt(x, y)
			e0, e1, e2 := edge(tri.A, tri.B, p), edge(tri.B, tri.C, p), edge(tri.C, tri.A, p)
			strictlyInside := (e0 > 0 && e1 > 0 && e2 > 0) || (e0 < 0 && e1 < 0 && e2 < 0)
			if strictlyInside && cb.Get(x, y) != framebuf.White {
				t.Errorf("interior pixel (%d,%d) = %v, want white", x, y, cb.Get(x, y))
			}
			if x > 10 || y > 10 {
				if cb.Get(x, y) != framebuf.Black {
					t.Errorf("pixel (%d,%d) outside bbox was drawn", x, y)
				}
				if !math.IsInf(float64(zbuf.Get(x, y)), -1) {
					t.Errorf("depth (%d,%d) outside bbox changed", x, y)
				}
			}
		}
	}

	if z := zbuf.Get(5, 3); !approx(z, 1) {
		t.Errorf("zbuf(5,3) = %v, want 1", z)
	}
}

func TestDrawTriangleDepthStrictlyGreater(t *testing.T) {
	a, b, c := pt(0, 0), pt(15, 0), pt(0, 15)
	probe := pt(3, 3)

	cb := framebuf.NewColor(16, 16)
	zbuf := framebuf.NewDepth(16, 16)

	DrawTriangle(cb, zbuf, flatTriangle(a, b, c, 0.2), SolidColor(framebuf.Red))
	if cb.Get(probe[0], probe[1]) != framebuf.Red {
		t.Fatalf("first triangle not drawn")
	}

	// Nearer triangle submitted later wins.
	DrawTriangle(cb, zbuf, flatTriangle(a, b, c, 0.5), SolidColor(framebuf.Green))
	if got := cb.Get(probe[0], probe[1]); got != framebuf.Green {
		t.Errorf("after nearer triangle pixel = %v, want green", got)
	}

	// Farther triangle submitted last loses.
	st := DrawTriangle(cb, zbuf, flatTriangle(a, b, c, 0.2), SolidColor(framebuf.Blue))
	if got := cb.Get(probe[0], probe[1]); got != framebuf.Green {
		t.Errorf("after farther triangle pixel = %v, want green", got)
	}
	if st.Written != 0 || st.DepthRejected() != st.Inside {
		t.Errorf("farther triangle stats = %+v", st)
	}

	// Equal depth does not overwrite: the first writer keeps the pixel.
	DrawTriangle(cb, zbuf, flatTriangle(a, b, c, 0.5), SolidColor(framebuf.White))
	if got := cb.Get(probe[0], probe[1]); got != framebuf.Green {
		t.Errorf("after equal-depth triangle pixel = %v, want green", got)
	}
}

func TestDrawTriangleDegenerate(t *testing.T) {
	cb := framebuf.NewColor(10, 10)
	zbuf := framebuf.NewDepth(10, 10)
	before := append([]float32(nil), zbuf.Data()...)

	tri := flatTriangle(pt(2, 2), pt(2, 2), pt(8, 6), 1)
	st := DrawTriangle(cb, zbuf, tri, SolidColor(framebuf.White))
	if st.Written != 0 || st.Inside != 0 {
		t.Errorf("degenerate triangle stats = %+v, want nothing inside", st)
	}
	for i, z := range zbuf.Data() {
		if z != before[i] {
			t.Fatalf("depth sample %d changed to %v", i, z)
		}
	}
	for i, c := range cb.Data() {
		if c != framebuf.Black {
			t.Fatalf("color sample %d changed to %v", i, c)
		}
	}
}

func TestDrawTriangleInterpolatesDepth(t *testing.T) {
	cb := framebuf.NewColor(11, 11)
	zbuf := framebuf.NewDepth(11, 11)
	tri := &Triangle2D{A: pt(0, 0), B: pt(10, 0), C: pt(0, 10), Depth: Vec3{0, 1, 0}}
	DrawTriangle(cb, zbuf, tri, SolidColor(framebuf.White))

	for x := 0; x <= 5; x++ {
		if z := zbuf.Get(x, 0); !approx(z, float32(x)/10) {
			t.Errorf("depth at (%d,0) = %v, want %v", x, z, float32(x)/10)
		}
	}
}

func TestVertexColors(t *testing.T) {
	cb := framebuf.NewColor(11, 11)
	zbuf := framebuf.NewDepth(11, 11)
	tri := flatTriangle(pt(0, 0), pt(10, 0), pt(0, 10), 0)
	DrawTriangle(cb, zbuf, tri, VertexColors(framebuf.Red, framebuf.Green, framebuf.Blue))

	if got := cb.Get(0, 0); got != framebuf.Red {
		t.Errorf("vertex A = %v, want red", got)
	}
	if got := cb.Get(10, 0); got != framebuf.Green {
		t.Errorf("vertex B = %v, want green", got)
	}
	if got := cb.Get(0, 10); got != framebuf.Blue {
		t.Errorf("vertex C = %v, want blue", got)
	}
	mid := cb.Get(5, 0)
	if mid.B != 0 || mid.R < 126 || mid.R > 128 || mid.G < 126 || mid.G > 128 {
		t.Errorf("edge midpoint = %v, want half red half green", mid)
	}
}

func TestTexturedScalesByIntensity(t *testing.T) {
	// Left half of the texture red, right half blue. 201·0.5 keeps the
	// products away from an integer boundary.
	sampler := SamplerFunc(func(uv linalg.Vec2[float32]) Color {
		if uv[0] < 0.5 {
			return framebuf.RGB(201, 0, 0)
		}
		return framebuf.RGB(0, 0, 201)
	})

	cb := framebuf.NewColor(11, 11)
	zbuf := framebuf.NewDepth(11, 11)
	tri := &Triangle2D{
		A: pt(0, 0), B: pt(10, 0), C: pt(0, 10),
		Depth:     Vec3{1, 1, 1},
		UV:        linalg.Mat3x2[float32]{{0, 0}, {1, 0}, {0, 1}},
		Intensity: Vec3{0.5, 0.5, 0.5},
	}
	DrawTriangle(cb, zbuf, tri, Textured(tri, sampler))

	if got := cb.Get(1, 1); got != framebuf.RGB(100, 0, 0) {
		t.Errorf("left texel = %v, want (100,0,0)", got)
	}
	if got := cb.Get(8, 1); got != framebuf.RGB(0, 0, 100) {
		t.Errorf("right texel = %v, want (0,0,100)", got)
	}
}

func TestLitWrapsOverflow(t *testing.T) {
	tri := flatTriangle(pt(0, 0), pt(4, 0), pt(0, 4), 1)
	tri.Intensity = Vec3{2, 2, 2}
	f := Lit(tri, SolidColor(framebuf.RGB(200, 100, 0)))
	if got := f(Vec3{1, 0, 0}); got != framebuf.RGB(144, 200, 0) {
		t.Errorf("lit color = %v, want truncated (144,200,0)", got)
	}
}

func TestStatsAdd(t *testing.T) {
	var s Stats
	s.Add(Stats{Tested: 4, Inside: 3, Written: 1})
	s.Add(Stats{Tested: 1, Inside: 1, Written: 1})
	if s != (Stats{Tested: 5, Inside: 4, Written: 2}) || s.DepthRejected() != 2 {
		t.Errorf("stats = %+v", s)
	}
}
