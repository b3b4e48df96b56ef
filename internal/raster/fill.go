package raster

// edge is the 2D cross product (b−a)×(p−a). Its sign tells which side of
// the directed edge a→b the point p lies on.
func edge(a, b, p Point) int {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}

// FillTriangle fills a triangle without depth testing. A pixel is drawn
// when its three edge values are all ≥ 0 or all ≤ 0, so pixels exactly on
// an edge are included. Zero-area triangles draw nothing.
func FillTriangle(dt DrawTarget, a, b, c Point, col Color) Stats {
	var st Stats
	if edge(a, b, c) == 0 {
		return st
	}
	minX, minY, maxX, maxY, ok := bbox(dt, a, b, c)
	if !ok {
		return st
	}

	var p Point
	for p[1] = minY; p[1] <= maxY; p[1]++ {
		for p[0] = minX; p[0] <= maxX; p[0]++ {
			st.Tested++
			e0 := edge(a, b, p)
			e1 := edge(b, c, p)
			e2 := edge(c, a, p)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				st.Inside++
				st.Written++
				dt.Draw(p[0], p[1], col)
			}
		}
	}
	return st
}
