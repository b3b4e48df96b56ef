package raster

// Line draws the segment p0–p1 with Bresenham's algorithm. The dominant
// axis advances one pixel per step and the minor axis moves at most one
// pixel per step, when the doubled error exceeds the dominant delta.
// A zero-length segment draws one pixel.
func Line(dt DrawTarget, p0, p1 Point, c Color) {
	x0, y0, x1, y1 := p0[0], p0[1], p1[0], p1[1]

	steep := abs(x1-x0) < abs(y1-y0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	derror2 := abs(y1-y0) * 2
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	error2 := 0
	y := y0
	for x := x0; x <= x1; x++ {
		if steep {
			dt.Draw(y, x, c)
		} else {
			dt.Draw(x, y, c)
		}
		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
}

// LineParametric draws p0–p1 by walking the dominant axis and linearly
// interpolating the other coordinate with t = (i−i0)/(i1−i0), truncating
// to an integer. It rounds differently from Line on some slopes.
func LineParametric(dt DrawTarget, p0, p1 Point, c Color) {
	x0, y0, x1, y1 := p0[0], p0[1], p1[0], p1[1]
	if x0 == x1 && y0 == y1 {
		dt.Draw(x0, y0, c)
		return
	}

	steep := abs(x1-x0) < abs(y1-y0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	span := float32(x1 - x0)
	for x := x0; x <= x1; x++ {
		t := float32(x-x0) / span
		y := int(float32(y0)*(1-t) + float32(y1)*t)
		if steep {
			dt.Draw(y, x, c)
		} else {
			dt.Draw(x, y, c)
		}
	}
}

// TriangleOutline draws the three edges of a triangle.
func TriangleOutline(dt DrawTarget, a, b, c Point, col Color) {
	Line(dt, a, b, col)
	Line(dt, b, c, col)
	Line(dt, c, a, col)
}
