package raster

import (
	"slices"
	"testing"

	"softrender/internal/framebuf"
	"softrender/internal/linalg"
)

// recorder is a DrawTarget that remembers every Draw call in order.
type recorder struct {
	w, h int
	pts  []Point
}

func newRecorder(w, h int) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Draw(x, y int, _ Color) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	r.pts = append(r.pts, Point{x, y})
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func pt(x, y int) Point { return linalg.V2(x, y) }

func sorted(ps []Point) []Point {
	out := slices.Clone(ps)
	slices.SortFunc(out, func(a, b Point) int {
		if a[0] != b[0] {
			return a[0] - b[0]
		}
		return a[1] - b[1]
	})
	return out
}

func TestLineBresenhamReference(t *testing.T) {
	r := newRecorder(10, 10)
	Line(r, pt(0, 0), pt(4, 2), framebuf.White)

	if len(r.pts) != 5 {
		t.Fatalf("got %d points, want 5: %v", len(r.pts), r.pts)
	}
	wantY := []int{0, 0, 1, 1, 2}
	for i, p := range r.pts {
		if p[0] != i || p[1] != wantY[i] {
			t.Errorf("point %d = %v, want (%d,%d)", i, p, i, wantY[i])
		}
		if i > 0 {
			if dy := p[1] - r.pts[i-1][1]; dy != 0 && dy != 1 {
				t.Errorf("step %d moved y by %d", i, dy)
			}
		}
	}
}

func TestLineShapes(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 Point
		want   []Point
	}{
		{"single pixel", pt(3, 3), pt(3, 3), []Point{{3, 3}}},
		{"horizontal", pt(1, 2), pt(4, 2), []Point{{1, 2}, {2, 2}, {3, 2}, {4, 2}}},
		{"vertical", pt(2, 4), pt(2, 1), []Point{{2, 1}, {2, 2}, {2, 3}, {2, 4}}},
		{"diagonal", pt(0, 0), pt(3, 3), []Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"steep", pt(0, 0), pt(2, 4), []Point{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}}},
		{"falling", pt(0, 2), pt(4, 0), []Point{{0, 2}, {1, 2}, {2, 1}, {3, 1}, {4, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(10, 10)
			Line(r, tc.p0, tc.p1, framebuf.White)
			if got := sorted(r.pts); !slices.Equal(got, sorted(tc.want)) {
				t.Errorf("Line(%v,%v) = %v, want %v", tc.p0, tc.p1, got, tc.want)
			}
		})
	}
}

func TestLineSymmetricEndpoints(t *testing.T) {
	a, b := newRecorder(20, 20), newRecorder(20, 20)
	Line(a, pt(2, 3), pt(17, 9), framebuf.White)
	Line(b, pt(17, 9), pt(2, 3), framebuf.White)
	if !slices.Equal(sorted(a.pts), sorted(b.pts)) {
		t.Errorf("line depends on endpoint order:\n%v\n%v", a.pts, b.pts)
	}
}

func TestLineOneMinorStepPerMajorStep(t *testing.T) {
	r := newRecorder(64, 64)
	Line(r, pt(1, 60), pt(50, 3), framebuf.White)
	for i := 1; i < len(r.pts); i++ {
		dx := abs(r.pts[i][0] - r.pts[i-1][0])
		dy := abs(r.pts[i][1] - r.pts[i-1][1])
		if dy != 1 || dx > 1 {
			t.Fatalf("step %d: %v -> %v", i, r.pts[i-1], r.pts[i])
		}
	}
	if len(r.pts) != 58 {
		t.Errorf("steep line drew %d pixels, want 58", len(r.pts))
	}
}

func TestLineParametric(t *testing.T) {
	r := newRecorder(10, 10)
	LineParametric(r, pt(0, 0), pt(4, 2), framebuf.White)
	want := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}
	if !slices.Equal(r.pts, want) {
		t.Errorf("parametric (0,0)-(4,2) = %v, want %v", r.pts, want)
	}

	r = newRecorder(10, 10)
	LineParametric(r, pt(5, 5), pt(5, 5), framebuf.White)
	if !slices.Equal(r.pts, []Point{{5, 5}}) {
		t.Errorf("degenerate parametric line = %v", r.pts)
	}

	r = newRecorder(10, 10)
	LineParametric(r, pt(1, 0), pt(3, 6), framebuf.White)
	if len(r.pts) != 7 {
		t.Errorf("steep parametric line drew %d pixels, want 7", len(r.pts))
	}
}

func TestLineVariantsDiffer(t *testing.T) {
	b, p := newRecorder(10, 10), newRecorder(10, 10)
	Line(b, pt(0, 0), pt(3, 1), framebuf.White)
	LineParametric(p, pt(0, 0), pt(3, 1), framebuf.White)

	wantB := []Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}}
	wantP := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}}
	if !slices.Equal(b.pts, wantB) {
		t.Errorf("Bresenham = %v, want %v", b.pts, wantB)
	}
	if !slices.Equal(p.pts, wantP) {
		t.Errorf("parametric = %v, want %v", p.pts, wantP)
	}
}

func TestLineClipsToTarget(t *testing.T) {
	cb := framebuf.NewColor(5, 5)
	Line(cb, pt(-3, 2), pt(10, 2), framebuf.Red)
	for x := 0; x < 5; x++ {
		if cb.Get(x, 2) != framebuf.Red {
			t.Errorf("pixel (%d,2) not drawn", x)
		}
	}
}

func TestTriangleOutline(t *testing.T) {
	r := newRecorder(10, 10)
	TriangleOutline(r, pt(0, 0), pt(4, 0), pt(0, 4), framebuf.White)
	seen := map[Point]bool{}
	for _, p := range r.pts {
		seen[p] = true
	}
	for _, p := range []Point{{0, 0}, {4, 0}, {0, 4}, {2, 0}, {0, 2}, {2, 2}} {
		if !seen[p] {
			t.Errorf("outline missing %v", p)
		}
	}
	if seen[pt(1, 1)] {
		t.Errorf("outline filled interior pixel (1,1)")
	}
}

func TestDrawPoint(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want []Point
	}{
		{"inside", pt(3, 4), []Point{pt(3, 4)}},
		{"origin", pt(0, 0), []Point{pt(0, 0)}},
		{"far corner", pt(9, 9), []Point{pt(9, 9)}},
		{"left of target", pt(-1, 2), nil},
		{"below target", pt(2, 10), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := newRecorder(10, 10)
			DrawPoint(r, tc.p, framebuf.White)
			if !slices.Equal(r.pts, tc.want) {
				t.Errorf("drew %v, want %v", r.pts, tc.want)
			}
		})
	}
}
